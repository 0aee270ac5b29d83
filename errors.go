package appraisal

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	NoError ErrorKind = iota
	InputNotFound
	InvalidJSON
	MissingRequiredField
	OutputWriteFailure
	OtherError
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case InputNotFound:
		return "input not found"
	case InvalidJSON:
		return "invalid JSON"
	case MissingRequiredField:
		return "missing required field"
	case OutputWriteFailure:
		return "output write failure"
	default:
		return "error"
	}
}

// DataError is returned when the input document cannot be loaded or lacks
// one of the structural keys a report needs.
type DataError struct {
	Kind  ErrorKind
	Path  string
	Field string
	Err   error
}

func (e *DataError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %q", e.Path, e.Kind, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
}

func (e *DataError) Unwrap() error { return e.Err }

// WriteError is returned when the workbook could not be saved, or the saved
// file is missing or empty.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// KindOf classifies err.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	var de *DataError
	if errors.As(err, &de) {
		return de.Kind
	}
	var we *WriteError
	if errors.As(err, &we) {
		return OutputWriteFailure
	}
	return OtherError
}

func dataError(kind ErrorKind, path, field string, err error) error {
	return errors.WithStack(&DataError{Kind: kind, Path: path, Field: field, Err: err})
}

// NewWriteError wraps err as a write failure for path, recording the stack.
func NewWriteError(path string, err error) error {
	return errors.WithStack(&WriteError{Path: path, Err: err})
}
