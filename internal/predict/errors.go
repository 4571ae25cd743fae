package predict

import (
	"errors"
	"fmt"
)

// modelNotLoadedError is returned by Predict when startup could not load a
// predictor. The message carries the underlying load failure.
type modelNotLoadedError struct{ cause error }

func (e modelNotLoadedError) Error() string {
	if e.cause == nil {
		return "model not loaded"
	}
	return "model not loaded: " + e.cause.Error()
}

func (e modelNotLoadedError) Unwrap() error { return e.cause }

// ErrModelNotLoaded constructs a modelNotLoadedError for cause.
func ErrModelNotLoaded(cause error) error { return modelNotLoadedError{cause: cause} }

// IsModelNotLoaded reports whether err indicates a missing predictor.
func IsModelNotLoaded(err error) bool {
	var e modelNotLoadedError
	return errors.As(err, &e)
}

// badOutputError signals a predictor that returned the wrong number of values.
type badOutputError struct{ got int }

func (e badOutputError) Error() string {
	return fmt.Sprintf("predictor returned %d values for 1 record", e.got)
}

// IsBadOutput reports whether err indicates a malformed predictor result.
func IsBadOutput(err error) bool {
	var e badOutputError
	return errors.As(err, &e)
}

// outOfRangeError signals a finite prediction whose dollar value overflows.
type outOfRangeError struct{ raw float64 }

func (e outOfRangeError) Error() string {
	return fmt.Sprintf("prediction %g out of range for a dollar estimate", e.raw)
}

// IsOutOfRange reports whether err indicates a prediction too large to scale.
func IsOutOfRange(err error) bool {
	var e outOfRangeError
	return errors.As(err, &e)
}
