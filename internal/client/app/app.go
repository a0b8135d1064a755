// Package app holds the page-side flows of the client: initial load, login,
// profile change and logout.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/agent"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/api"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/session"
	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"go.uber.org/zap"
)

var ErrNoSession = errors.New("no active session")

type sessionStore interface {
	EnsureDeviceID(ctx context.Context) (string, error)
	GetSession(ctx context.Context) (*md.Session, error)
	SaveSession(ctx context.Context, sess md.Session) error
	ClearSession(ctx context.Context) error
}

type tokenAPI interface {
	RegisterToken(ctx context.Context, req *dto.RegisterTokenRequest) (*dto.RegisterTokenResponse, error)
	RemoveToken(ctx context.Context, deviceID string) (*api.RemoveResult, error)
}

// Channel carries messages to the background agent. Delivery is not acknowledged.
type Channel interface {
	Post(ctx context.Context, msg agent.Message)
}

type App struct {
	store     sessionStore
	api       tokenAPI
	channel   Channel
	pushToken string

	deviceID string
}

func New(store sessionStore, api tokenAPI, channel Channel, pushToken string) *App {
	return &App{
		store:     store,
		api:       api,
		channel:   channel,
		pushToken: pushToken,
	}
}

// Load runs on page start. It makes sure the device has an identity and, when a
// session was saved earlier, signals it to the agent again.
func (a *App) Load(ctx context.Context) (*md.Session, error) {
	deviceID, err := a.store.EnsureDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("ensure device id: %w", err)
	}
	a.deviceID = deviceID

	sess, err := a.store.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if sess == nil {
		zap.L().Info("no saved session", zap.String("deviceID", deviceID))
		return nil, nil
	}

	a.channel.Post(ctx, agent.Message{Type: agent.SessionUpdate, Data: sess})
	zap.L().Info("session restored", zap.String("userID", sess.UserID), zap.String("accountID", sess.AccountID))
	return sess, nil
}

func (a *App) DeviceID() string {
	return a.deviceID
}

// Login registers the push token for userID with consent granted, then stores
// the session and announces it to the agent.
func (a *App) Login(ctx context.Context, userID, accountID string) (*dto.RegisterTokenResponse, error) {
	sess := md.Session{UserID: userID, AccountID: accountID}
	if !sess.Valid() {
		return nil, fmt.Errorf("login: %w", session.ErrInvalidSession)
	}

	deviceID, err := a.ensureDevice(ctx)
	if err != nil {
		return nil, err
	}

	res, err := a.api.RegisterToken(
		ctx, &dto.RegisterTokenRequest{
			FCMToken:      a.pushToken,
			DeviceID:      deviceID,
			UserID:        userID,
			ConsentStatus: string(md.ConsentGranted),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("register token: %w", err)
	}

	if err = a.setSession(ctx, sess); err != nil {
		return nil, err
	}
	return res, nil
}

// ChangeProfile switches the active account of the logged-in user.
func (a *App) ChangeProfile(ctx context.Context, accountID string) error {
	cur, err := a.store.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if cur == nil {
		return ErrNoSession
	}
	return a.setSession(ctx, md.Session{UserID: cur.UserID, AccountID: accountID})
}

// Logout always clears the local session. A failed token removal is logged and
// does not stop it.
func (a *App) Logout(ctx context.Context) error {
	deviceID, err := a.ensureDevice(ctx)
	if err != nil {
		zap.L().Warn("logout without device id", zap.Error(err))
	} else {
		res, err := a.api.RemoveToken(ctx, deviceID)
		switch {
		case err != nil:
			zap.L().Warn("failed to remove token, continuing logout", zap.Error(err))
		case res.AlreadyRemoved:
			zap.L().Info("token was already removed", zap.String("deviceID", deviceID))
		}
	}

	if err = a.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.channel.Post(ctx, agent.Message{Type: agent.Logout})
	return nil
}

func (a *App) setSession(ctx context.Context, sess md.Session) error {
	if err := a.store.SaveSession(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.channel.Post(ctx, agent.Message{Type: agent.SessionUpdate, Data: &sess})
	return nil
}

func (a *App) ensureDevice(ctx context.Context) (string, error) {
	if a.deviceID != "" {
		return a.deviceID, nil
	}

	deviceID, err := a.store.EnsureDeviceID(ctx)
	if err != nil {
		return "", fmt.Errorf("ensure device id: %w", err)
	}
	a.deviceID = deviceID
	return deviceID, nil
}
