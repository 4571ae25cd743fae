package model

import (
	"errors"
	"fmt"
)

// ErrArtifactNotFound is returned by Load when the artifact file does not exist.
var ErrArtifactNotFound = errors.New("model artifact not found")

// InvalidArtifactError reports an artifact that decoded but failed validation.
type InvalidArtifactError struct{ msg string }

func (e *InvalidArtifactError) Error() string { return "invalid model artifact: " + e.msg }

func invalidf(format string, args ...any) error {
	return &InvalidArtifactError{msg: fmt.Sprintf(format, args...)}
}

// IsInvalidArtifact reports whether err is an InvalidArtifactError.
func IsInvalidArtifact(err error) bool {
	var ia *InvalidArtifactError
	return errors.As(err, &ia)
}
