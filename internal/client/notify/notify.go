// Package notify is the client's notification tray.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("notification not found")

const (
	ActionView    = "view"
	ActionDismiss = "dismiss"
)

type Action struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

type Notification struct {
	Title   string         `json:"title"`
	Body    string         `json:"body"`
	Icon    string         `json:"icon,omitempty"`
	Badge   string         `json:"badge,omitempty"`
	Tag     string         `json:"tag,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Actions []Action       `json:"actions,omitempty"`
	ShownAt time.Time      `json:"shown_at"`
}

// Tray holds the notifications currently visible. Showing a notification whose tag
// is already present replaces it instead of stacking a second one.
type Tray struct {
	mu     sync.Mutex
	items  map[string]Notification
	order  []string
	onOpen func(target string)
	now    func() time.Time
}

// NewTray calls onOpen when a notification's view action is clicked. onOpen may be nil.
func NewTray(onOpen func(target string)) *Tray {
	return &Tray{
		items:  make(map[string]Notification),
		onOpen: onOpen,
		now:    time.Now,
	}
}

func (t *Tray) Show(_ context.Context, n Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n.Tag == "" {
		n.Tag = uuid.NewString()
	}
	n.ShownAt = t.now()

	if _, ok := t.items[n.Tag]; !ok {
		t.order = append(t.order, n.Tag)
	}
	t.items[n.Tag] = n

	zap.L().Info("notification displayed", zap.String("tag", n.Tag), zap.String("title", n.Title))
	return nil
}

// Pending returns visible notifications in the order their tags first appeared.
func (t *Tray) Pending() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := make([]Notification, 0, len(t.order))
	for _, tag := range t.order {
		res = append(res, t.items[tag])
	}
	return res
}

// Click closes the notification. The view action also opens the app.
func (t *Tray) Click(tag, action string) error {
	t.mu.Lock()
	_, ok := t.items[tag]
	if ok {
		t.removeLocked(tag)
	}
	t.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	zap.L().Debug("notification clicked", zap.String("tag", tag), zap.String("action", action))
	if action == ActionView && t.onOpen != nil {
		t.onOpen("/")
	}
	return nil
}

func (t *Tray) removeLocked(tag string) {
	delete(t.items, tag)
	for i, v := range t.order {
		if v == tag {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}
