// Package agent is the client's background agent. It keeps an in-memory view of
// the session, receives session messages from the page and decides for every
// incoming push whether it may be shown.
package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/notify"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"go.uber.org/zap"
)

type MessageType string

const (
	SessionUpdate MessageType = "SESSION_UPDATE"
	Logout        MessageType = "LOGOUT"
)

type Message struct {
	Type MessageType `json:"type"`
	Data *md.Session `json:"data,omitempty"`
}

type SessionStore interface {
	GetSession(ctx context.Context) (*md.Session, error)
	SaveSession(ctx context.Context, sess md.Session) error
	ClearSession(ctx context.Context) error
}

type Displayer interface {
	Show(ctx context.Context, n notify.Notification) error
}

type Agent struct {
	store   SessionStore
	display Displayer

	mu    sync.Mutex
	view  *md.Session
	dirty int
	gen   uint64

	persistMu sync.Mutex
	pending   sync.WaitGroup
}

func New(store SessionStore, display Displayer) *Agent {
	return &Agent{store: store, display: display}
}

// Activate reconciles the in-memory view with durable storage. On error the view
// stays empty and the next push retries the read.
func (a *Agent) Activate(ctx context.Context) error {
	gen := a.generation()
	sess, err := a.store.GetSession(ctx)
	if err != nil {
		zap.L().Warn("agent activation could not read session", zap.Error(err))
		return err
	}

	a.mu.Lock()
	if a.dirty == 0 && a.gen == gen {
		a.view = sess
	}
	a.mu.Unlock()

	zap.L().Info("agent activated", zap.Bool("session", sess != nil))
	return nil
}

// View returns a copy of the in-memory session, or nil.
func (a *Agent) View() *md.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return copySession(a.view)
}

// OnMessage applies the message to the in-memory view before returning and
// persists it in the background.
func (a *Agent) OnMessage(ctx context.Context, msg Message) error {
	a.mu.Lock()
	switch msg.Type {
	case SessionUpdate:
		if msg.Data == nil || !msg.Data.Valid() {
			a.mu.Unlock()
			return fmt.Errorf("%w: session requires user_id and account_id", ErrInvalidMessage)
		}
		a.view = copySession(msg.Data)
	case Logout:
		a.view = nil
	default:
		a.mu.Unlock()
		zap.L().Warn("unknown message type", zap.String("type", string(msg.Type)))
		return fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, msg.Type)
	}
	a.dirty++
	a.gen++
	a.pending.Add(1)
	a.mu.Unlock()

	zap.L().Debug("session view updated", zap.String("type", string(msg.Type)))
	go a.persist(context.WithoutCancel(ctx))
	return nil
}

// persist writes the latest view, so concurrent updates settle on the newest one.
func (a *Agent) persist(ctx context.Context) {
	defer a.pending.Done()

	a.persistMu.Lock()
	defer a.persistMu.Unlock()

	sess := a.View()

	var err error
	if sess == nil {
		err = a.store.ClearSession(ctx)
	} else {
		err = a.store.SaveSession(ctx, *sess)
	}
	if err != nil {
		zap.L().Error("failed to persist session", zap.Error(err))
	}

	a.mu.Lock()
	a.dirty--
	a.mu.Unlock()
}

// OnPush runs the admission decision for one push and displays it on match.
// It never panics; malformed payloads are discarded.
func (a *Agent) OnPush(ctx context.Context, raw []byte) (d Decision) {
	release := a.Hold()
	defer release()

	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("recovered from panic while handling push", zap.Any("panic", r))
			d = Decision{Reason: ReasonMalformed}
		}
	}()

	p, err := decodePayload(raw)
	if err != nil {
		zap.L().Warn("discarding push", zap.String("reason", string(ReasonMalformed)), zap.Error(err))
		return Decision{Reason: ReasonMalformed}
	}

	sess := a.resolveSession(ctx)
	d = Admit(sess, p.data)
	if !d.Show {
		zap.L().Info("discarding push", zap.String("reason", string(d.Reason)))
		return d
	}

	if err = a.display.Show(ctx, p.display()); err != nil {
		zap.L().Error("failed to display notification", zap.Error(err))
	}
	return d
}

// resolveSession prefers durable storage. When a message arrived during the read,
// or its write is still in flight, the in-memory view is newer and is used instead.
func (a *Agent) resolveSession(ctx context.Context) *md.Session {
	a.mu.Lock()
	if a.dirty > 0 {
		defer a.mu.Unlock()
		return copySession(a.view)
	}
	gen := a.gen
	a.mu.Unlock()

	sess, err := a.store.GetSession(ctx)
	if err != nil {
		zap.L().Warn("session re-read failed, using in-memory view", zap.Error(err))
		return a.View()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.dirty > 0 || a.gen != gen {
		return copySession(a.view)
	}
	a.view = sess
	return copySession(sess)
}

func (a *Agent) generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen
}

// Hold marks work in progress. Wait blocks until every hold is released.
func (a *Agent) Hold() func() {
	a.pending.Add(1)
	return a.pending.Done
}

// Wait blocks until pending pushes and session writes finish.
func (a *Agent) Wait() {
	a.pending.Wait()
}

func copySession(s *md.Session) *md.Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
