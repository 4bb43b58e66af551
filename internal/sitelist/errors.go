package sitelist

import (
	"errors"
	"fmt"
)

// ErrBadStatus classifies non-success HTTP responses.
var ErrBadStatus = errors.New("unexpected status")

// LoadError is returned by providers when the list cannot be obtained. Its
// message is meant to be shown to the user as is.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("failed to load websites from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
