package validation

import (
	"errors"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid request")

// Errors collects every field-level violation found in one request.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

func (e Errors) Is(target error) bool {
	return target == ErrInvalidRequest
}
