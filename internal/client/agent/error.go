package agent

import "errors"

var ErrMalformedPayload = errors.New("malformed push payload")

var ErrInvalidMessage = errors.New("invalid session message")
