package models

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnsupportedPayload = errors.New("unsupported payload")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. The subscriber parks such messages
// on the DLQ without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}
