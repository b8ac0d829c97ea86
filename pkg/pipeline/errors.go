package pipeline

import "errors"

// FatalError marks a job as unprocessable: redelivering it can never
// succeed, so the queue fails it terminally instead of retrying.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying error for errors.Is/As.
func (e *FatalError) Unwrap() error { return e.Err }

// Fatal wraps an error as fatal.
func Fatal(err error) error {
	return &FatalError{Err: err}
}

// IsFatal reports whether the error (or anything it wraps) is fatal.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
