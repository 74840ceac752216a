package models

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch indicates a field was present with the wrong JSON kind
var ErrTypeMismatch = errors.New("type mismatch")

// DecodeError reports the field that could not be decoded.
// Field is a dotted path such as "card.funding.token" or "events[1].amount".
type DecodeError struct {
	Field    string
	Expected string
	Got      string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: expected %s, got %s", e.Field, e.Expected, e.Got)
}

// Unwrap returns ErrTypeMismatch for errors.Is support
func (e *DecodeError) Unwrap() error {
	return ErrTypeMismatch
}
