package excel

import (
	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

func fill(color string) *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color},
			Pattern: 1,
		},
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func fontSize(size float64) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Size: size,
		},
	}
}

func fontColor(color string) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Color: color,
		},
	}
}

func textAlignment(a string) *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: a,
		},
	}
}

func verticalCenter() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical: "center",
		},
	}
}

func wrapText() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			WrapText: true,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func box() *excelize.Style {
	return thinBorder("left", "right", "top", "bottom")
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
