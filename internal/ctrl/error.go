package ctrl

import "errors"

// ErrNotFound is returned when no token is registered for the device.
var ErrNotFound = errors.New("device not found")

// ErrUpstreamSend is returned when the push sender fails.
var ErrUpstreamSend = errors.New("push sender failed")
