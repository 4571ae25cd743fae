package features

import (
	"errors"
	"strings"
)

// MissingFieldError reports required fields absent from a request object.
// Fields are listed in declaration order.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = "'" + f + "'"
	}
	if len(quoted) == 1 {
		return "Missing required field: " + quoted[0]
	}
	return "Missing required fields: " + strings.Join(quoted, ", ")
}

// First returns the first missing field.
func (e *MissingFieldError) First() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0]
}

// IsMissingField reports whether err is, or wraps, a MissingFieldError.
func IsMissingField(err error) bool {
	var mf *MissingFieldError
	return errors.As(err, &mf)
}

// InvalidFieldError reports a present field whose value is not a JSON number.
type InvalidFieldError struct {
	Field string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	msg := "invalid value for field '" + e.Field + "': expected a number"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFieldError) Unwrap() error { return e.Err }

// IsInvalidField reports whether err is, or wraps, an InvalidFieldError.
func IsInvalidField(err error) bool {
	var inv *InvalidFieldError
	return errors.As(err, &inv)
}

// ParseError reports a request body that is not a single JSON object.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is, or wraps, a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
