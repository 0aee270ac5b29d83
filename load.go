package appraisal

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Document is a loaded JSON input, kept as decoded. Numbers are held as
// json.Number so identifiers and years keep their textual form.
type Document struct {
	Path string
	Root any
}

// Load reads and decodes the JSON document at path. It does not look at
// the shape of the document; that happens in ParseEmployeeReport and
// ParseCompanyReport.
func Load(path string) (*Document, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, dataError(InputNotFound, path, "", err)
	}
	return Decode(path, bytes.NewReader(bs))
}

// Decode decodes a JSON document from r. The name is used in errors.
func Decode(name string, r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, dataError(InvalidJSON, name, "", err)
	}
	// Trailing garbage after the top-level value is as broken as a bad value.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, dataError(InvalidJSON, name, "", err)
	}

	return &Document{Path: name, Root: root}, nil
}
