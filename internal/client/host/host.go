// Package host runs the background agent the way a platform would: it spawns the
// agent on demand, may evict it between events, and carries page messages to it
// on a best-effort channel.
package host

import (
	"context"
	"sync"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/agent"
	"go.uber.org/zap"
)

type Factory func() *agent.Agent

type Host struct {
	mu      sync.Mutex
	factory Factory
	current *agent.Agent
}

func New(factory Factory) *Host {
	return &Host{factory: factory}
}

// Start spawns and activates the agent if none is running.
func (h *Host) Start(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.spawnLocked(ctx)
}

func (h *Host) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current != nil
}

// Evict drops the running agent once its pending work is done. The in-memory
// view goes with it. Posts and dispatches block until the eviction completes, so
// a respawned agent never reads storage behind an unfinished write.
func (h *Host) Evict() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return
	}
	h.current.Wait()
	h.current = nil
	zap.L().Debug("agent evicted")
}

// Post delivers msg to the running agent. With no agent running the message is
// dropped; the caller is never told either way.
func (h *Host) Post(ctx context.Context, msg agent.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		zap.L().Info("no agent running, message dropped", zap.String("type", string(msg.Type)))
		return
	}

	if err := h.current.OnMessage(ctx, msg); err != nil {
		zap.L().Warn("agent rejected message", zap.Error(err))
	}
}

// Dispatch delivers a push, spawning an agent if needed. The agent is kept alive
// until the decision and display complete.
func (h *Host) Dispatch(ctx context.Context, payload []byte) agent.Decision {
	h.mu.Lock()
	a := h.spawnLocked(ctx)
	release := a.Hold()
	h.mu.Unlock()
	defer release()

	return a.OnPush(ctx, payload)
}

func (h *Host) spawnLocked(ctx context.Context) *agent.Agent {
	if h.current != nil {
		return h.current
	}

	a := h.factory()
	if err := a.Activate(ctx); err != nil {
		zap.L().Warn("agent started without a session view", zap.Error(err))
	}
	h.current = a
	zap.L().Debug("agent spawned")
	return a
}
