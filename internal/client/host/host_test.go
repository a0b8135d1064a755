package host

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/agent"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/notify"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/session"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/storage/memory"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const push = `{"notification":{"title":"t","body":"b"},"data":{"user_id":"user-a","account_id":"account-x"}}`

func newHost() (*Host, *session.Store, *notify.Tray, *int) {
	store := session.New(memory.New())
	tray := notify.NewTray(nil)
	spawned := 0
	h := New(
		func() *agent.Agent {
			spawned++
			return agent.New(store, tray)
		},
	)
	return h, store, tray, &spawned
}

func TestHost_PostWithoutAgentIsDropped(t *testing.T) {
	ctx := context.Background()
	h, store, _, _ := newHost()

	h.Post(ctx, agent.Message{Type: agent.SessionUpdate, Data: &md.Session{UserID: "user-a", AccountID: "account-x"}})
	assert.False(t, h.Running())

	sess, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestHost_DispatchSpawnsAgent(t *testing.T) {
	ctx := context.Background()
	h, store, tray, spawned := newHost()
	require.NoError(t, store.SaveSession(ctx, md.Session{UserID: "user-a", AccountID: "account-x"}))

	d := h.Dispatch(ctx, []byte(push))
	assert.True(t, d.Show)
	assert.True(t, h.Running())
	assert.Equal(t, 1, *spawned)
	assert.Len(t, tray.Pending(), 1)

	h.Dispatch(ctx, []byte(push))
	assert.Equal(t, 1, *spawned)
}

func TestHost_EvictionAndRespawn(t *testing.T) {
	ctx := context.Background()
	h, _, tray, spawned := newHost()

	h.Start(ctx)
	h.Post(ctx, agent.Message{Type: agent.SessionUpdate, Data: &md.Session{UserID: "user-a", AccountID: "account-x"}})
	h.Evict()
	assert.False(t, h.Running())

	assert.True(t, h.Dispatch(ctx, []byte(push)).Show)
	assert.Equal(t, 2, *spawned)
	assert.Len(t, tray.Pending(), 1)

	h.Post(ctx, agent.Message{Type: agent.Logout})
	h.Evict()

	assert.Equal(t, agent.ReasonNoSession, h.Dispatch(ctx, []byte(push)).Reason)
	assert.Equal(t, 3, *spawned)
}

func TestHost_EvictWithoutAgent(t *testing.T) {
	h, _, _, _ := newHost()
	assert.NotPanics(t, h.Evict)
}

type gatedStore struct {
	agent.SessionStore
	release chan struct{}
}

func (s *gatedStore) SaveSession(ctx context.Context, sess md.Session) error {
	<-s.release
	return s.SessionStore.SaveSession(ctx, sess)
}

func TestHost_DispatchDuringEvictionSeesPendingSession(t *testing.T) {
	ctx := context.Background()
	durable := session.New(memory.New())
	require.NoError(t, durable.SaveSession(ctx, md.Session{UserID: "user-a", AccountID: "account-x"}))

	gs := &gatedStore{SessionStore: durable, release: make(chan struct{})}
	tray := notify.NewTray(nil)
	h := New(
		func() *agent.Agent {
			return agent.New(gs, tray)
		},
	)
	h.Start(ctx)
	h.Post(ctx, agent.Message{Type: agent.SessionUpdate, Data: &md.Session{UserID: "user-b", AccountID: "account-y"}})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		h.Evict()
	}()

	// Give Evict time to start waiting on the blocked write.
	time.Sleep(20 * time.Millisecond)

	var d agent.Decision
	go func() {
		defer wg.Done()
		d = h.Dispatch(ctx, []byte(`{"data":{"user_id":"user-b","account_id":"account-y"}}`))
	}()

	time.Sleep(20 * time.Millisecond)
	close(gs.release)
	wg.Wait()

	assert.True(t, d.Show, d.Reason)
	assert.Len(t, tray.Pending(), 1)
}
