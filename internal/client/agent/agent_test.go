package agent

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/notify"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/session"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/storage"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/storage/memory"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matching = `{"notification":{"title":"Hello","body":"World"},"data":{"user_id":"user-a","account_id":"account-x"}}`

var sessA = md.Session{UserID: "user-a", AccountID: "account-x"}

func newAgent(t *testing.T) (*Agent, *session.Store, *memory.Backend, *notify.Tray) {
	t.Helper()
	backend := memory.New()
	store := session.New(backend)
	tray := notify.NewTray(nil)
	return New(store, tray), store, backend, tray
}

func TestAgent_OnPush_NoSession(t *testing.T) {
	a, _, _, tray := newAgent(t)
	require.NoError(t, a.Activate(context.Background()))

	d := a.OnPush(context.Background(), []byte(matching))
	assert.Equal(t, Decision{Reason: ReasonNoSession}, d)
	assert.Empty(t, tray.Pending())
}

func TestAgent_SessionUpdateThenPush(t *testing.T) {
	ctx := context.Background()
	a, store, _, tray := newAgent(t)

	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	assert.Equal(t, &sessA, a.View())

	d := a.OnPush(ctx, []byte(matching))
	assert.True(t, d.Show)

	pending := tray.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "Hello", pending[0].Title)
	assert.Equal(t, "World", pending[0].Body)
	assert.Equal(t, "firebase-notification", pending[0].Tag)
	assert.Equal(t, "user-a", pending[0].Data["user_id"])
	require.Len(t, pending[0].Actions, 2)
	assert.Equal(t, notify.ActionView, pending[0].Actions[0].Action)

	a.Wait()
	stored, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, &sessA, stored)
}

func TestAgent_Logout(t *testing.T) {
	ctx := context.Background()
	a, store, _, tray := newAgent(t)

	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	require.NoError(t, a.OnMessage(ctx, Message{Type: Logout}))
	assert.Nil(t, a.View())

	assert.Equal(t, ReasonNoSession, a.OnPush(ctx, []byte(matching)).Reason)
	assert.Empty(t, tray.Pending())

	a.Wait()
	stored, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAgent_InvalidMessage(t *testing.T) {
	ctx := context.Background()
	a, _, _, _ := newAgent(t)

	assert.ErrorIs(t, a.OnMessage(ctx, Message{Type: "PING"}), ErrInvalidMessage)
	assert.ErrorIs(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &md.Session{UserID: "u"}}), ErrInvalidMessage)
	assert.Nil(t, a.View())
}

func TestAgent_RespawnRereadsStorage(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := session.New(backend)
	require.NoError(t, store.SaveSession(ctx, sessA))

	tray := notify.NewTray(nil)
	fresh := New(store, tray)

	assert.True(t, fresh.OnPush(ctx, []byte(matching)).Show)
	assert.Equal(t, &sessA, fresh.View())
}

func TestAgent_DurableSessionWinsOverStaleView(t *testing.T) {
	ctx := context.Background()
	a, store, _, tray := newAgent(t)

	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	a.Wait()

	require.NoError(t, store.SaveSession(ctx, md.Session{UserID: "user-a", AccountID: "account-y"}))

	assert.Equal(t, ReasonSessionMismatch, a.OnPush(ctx, []byte(matching)).Reason)
	assert.Empty(t, tray.Pending())
	assert.Equal(t, "account-y", a.View().AccountID)
}

func TestAgent_StorageFailureFallsBackToView(t *testing.T) {
	ctx := context.Background()
	a, _, backend, tray := newAgent(t)

	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	a.Wait()
	backend.SetFailure(storage.ErrUnavailable)

	assert.True(t, a.OnPush(ctx, []byte(matching)).Show)
	assert.Len(t, tray.Pending(), 1)
}

func TestAgent_ActivateStorageFailure(t *testing.T) {
	a, _, backend, _ := newAgent(t)
	backend.SetFailure(storage.ErrUnavailable)

	assert.ErrorIs(t, a.Activate(context.Background()), storage.ErrUnavailable)
	assert.Nil(t, a.View())
}

type blockingStore struct {
	SessionStore
	release chan struct{}
}

func (s *blockingStore) SaveSession(ctx context.Context, sess md.Session) error {
	<-s.release
	return s.SessionStore.SaveSession(ctx, sess)
}

func TestAgent_PushRacingPersistSeesNewSession(t *testing.T) {
	ctx := context.Background()
	bs := &blockingStore{SessionStore: session.New(memory.New()), release: make(chan struct{})}
	tray := notify.NewTray(nil)
	a := New(bs, tray)

	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))

	assert.True(t, a.OnPush(ctx, []byte(matching)).Show)

	close(bs.release)
	a.Wait()
}

func TestAgent_MalformedPayloads(t *testing.T) {
	ctx := context.Background()
	a, _, _, tray := newAgent(t)
	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	a.Wait()

	for _, raw := range []string{`{not json`, `[1,2]`, `{"data":"user-a"}`, `{"data":[1]}`} {
		assert.Equal(t, ReasonMalformed, a.OnPush(ctx, []byte(raw)).Reason, raw)
	}
	assert.Empty(t, tray.Pending())

	assert.True(t, a.OnPush(ctx, []byte(matching)).Show)
}

func TestAgent_DisplayFallbacks(t *testing.T) {
	ctx := context.Background()
	a, _, _, tray := newAgent(t)
	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	a.Wait()

	raw := `{"notification_payload":{"title":"From payload"},"data":{"user_id":"user-a","account_id":"account-x"}}`
	require.True(t, a.OnPush(ctx, []byte(raw)).Show)

	pending := tray.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "From payload", pending[0].Title)
	assert.Equal(t, "Nova notificação", pending[0].Body)

	raw = `{"data":{"user_id":"user-a","account_id":"account-x"}}`
	require.True(t, a.OnPush(ctx, []byte(raw)).Show)

	pending = tray.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "Push Notifications PoC", pending[0].Title)

	raw = `{"notification":42,"notification_payload":"x","data":{"user_id":"user-a","account_id":"account-x"}}`
	require.True(t, a.OnPush(ctx, []byte(raw)).Show)

	pending = tray.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "Push Notifications PoC", pending[0].Title)
	assert.Equal(t, "Nova notificação", pending[0].Body)
}

type panickyDisplay struct{}

func (panickyDisplay) Show(context.Context, notify.Notification) error {
	panic("display crashed")
}

func TestAgent_RecoversFromPanic(t *testing.T) {
	ctx := context.Background()
	a := New(session.New(memory.New()), panickyDisplay{})
	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	a.Wait()

	assert.Equal(t, ReasonMalformed, a.OnPush(ctx, []byte(matching)).Reason)
	assert.Equal(t, ReasonMalformed, a.OnPush(ctx, []byte(matching)).Reason)
}

type failingDisplay struct{}

func (failingDisplay) Show(context.Context, notify.Notification) error {
	return errors.New("no display")
}

func TestAgent_DisplayErrorKeepsDecision(t *testing.T) {
	ctx := context.Background()
	a := New(session.New(memory.New()), failingDisplay{})
	require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &sessA}))
	a.Wait()

	assert.True(t, a.OnPush(ctx, []byte(matching)).Show)
}

func TestAgent_ConcurrentUpdatesSettleOnLatest(t *testing.T) {
	ctx := context.Background()
	a, store, _, _ := newAgent(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = a.OnPush(ctx, []byte(matching))
		}()
	}
	for _, acc := range []string{"a1", "a2", "a3"} {
		require.NoError(t, a.OnMessage(ctx, Message{Type: SessionUpdate, Data: &md.Session{UserID: "u", AccountID: acc}}))
	}
	wg.Wait()

	done := make(chan struct{})
	go func() {
		a.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pending work did not finish")
	}

	stored, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a3", stored.AccountID)
	assert.Equal(t, "a3", a.View().AccountID)
}
