// Package storage defines the durable key-value primitive the client keeps its
// device identity and session in.
package storage

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("storage unavailable")

var ErrNotFound = errors.New("record not found")

const (
	SessionStore = "session"
	DeviceStore  = "device"
)

// Backend stores JSON-encodable values under (store, key). Implementations acquire
// their underlying handle per call and never keep one open between calls.
type Backend interface {
	Get(ctx context.Context, store, key string, dst any) error
	Put(ctx context.Context, store, key string, val any) error
	Delete(ctx context.Context, store, key string) error
}
