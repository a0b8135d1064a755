// Package session persists the device identity and the active (user, account)
// session on top of a storage.Backend.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/storage"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidSession = errors.New("session requires both user_id and account_id")

const (
	deviceKey  = "device"
	currentKey = "current"
)

type deviceRecord struct {
	ID       string `json:"id"`
	DeviceID string `json:"device_id"`
}

type sessionRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	AccountID string `json:"account_id"`
}

type Store struct {
	backend storage.Backend
}

func New(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

// GetDeviceID returns "" when no identity was saved yet.
func (s *Store) GetDeviceID(ctx context.Context) (string, error) {
	rec := deviceRecord{}
	err := s.backend.Get(ctx, storage.DeviceStore, deviceKey, &rec)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return rec.DeviceID, nil
}

func (s *Store) SaveDeviceID(ctx context.Context, deviceID string) error {
	return s.backend.Put(ctx, storage.DeviceStore, deviceKey, deviceRecord{ID: deviceKey, DeviceID: deviceID})
}

// EnsureDeviceID returns the saved identity, creating a random one the first time.
func (s *Store) EnsureDeviceID(ctx context.Context) (string, error) {
	id, err := s.GetDeviceID(ctx)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err = s.SaveDeviceID(ctx, id); err != nil {
		return "", err
	}

	zap.L().Info("device identity created", zap.String("deviceID", id))
	return id, nil
}

// GetSession returns nil when no session is stored. A stored record missing either
// identifier is treated as absent.
func (s *Store) GetSession(ctx context.Context) (*md.Session, error) {
	rec := sessionRecord{}
	err := s.backend.Get(ctx, storage.SessionStore, currentKey, &rec)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	sess := &md.Session{UserID: rec.UserID, AccountID: rec.AccountID}
	if !sess.Valid() {
		zap.L().Warn("ignoring partial session record", zap.String("userID", rec.UserID))
		return nil, nil
	}
	return sess, nil
}

func (s *Store) SaveSession(ctx context.Context, sess md.Session) error {
	if !sess.Valid() {
		return ErrInvalidSession
	}

	err := s.backend.Put(
		ctx, storage.SessionStore, currentKey, sessionRecord{
			ID:        currentKey,
			UserID:    sess.UserID,
			AccountID: sess.AccountID,
		},
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession is a no-op when nothing is stored.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.backend.Delete(ctx, storage.SessionStore, currentKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
