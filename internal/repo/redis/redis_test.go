package redis

import (
	"context"
	"testing"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cli := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = cli.Close() })

	return NewWithClient(cli), mr
}

func TestRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRepo(t)

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time { return now }

	action, rec, err := r.Upsert(
		ctx, "T1", md.TokenFields{DeviceID: "device-1", UserID: "user-a", ConsentStatus: md.ConsentGranted},
	)
	require.NoError(t, err)
	assert.Equal(t, md.ActionCreated, action)
	assert.Equal(t, "T1", rec.FCMToken)
	assert.Equal(t, "device-1", rec.DeviceID)
	assert.True(t, now.Equal(rec.LastUpdatedAt))
	assert.True(t, mr.Exists(config.TokenKeyPrefix+"T1"))

	r.now = func() time.Time { return now.Add(time.Minute) }
	action, rec, err = r.Upsert(ctx, "T1", md.TokenFields{UserID: "user-b"})
	require.NoError(t, err)
	assert.Equal(t, md.ActionUpdated, action)
	assert.Equal(t, "user-b", rec.UserID)
	assert.Equal(t, "device-1", rec.DeviceID)
	assert.Equal(t, md.ConsentGranted, rec.ConsentStatus)
	assert.True(t, now.Add(time.Minute).Equal(rec.LastUpdatedAt))

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_FindByToken(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	_, err := r.FindByToken(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, _, err = r.Upsert(ctx, "T1", md.TokenFields{DeviceID: "d", UserID: "u", ConsentStatus: md.ConsentDefault})
	require.NoError(t, err)

	rec, err := r.FindByToken(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, md.ConsentDefault, rec.ConsentStatus)
}

func TestRepository_FindByUserAndConsent(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	_, _, _ = r.Upsert(ctx, "T1", md.TokenFields{DeviceID: "d1", UserID: "user-a", ConsentStatus: md.ConsentGranted})
	_, _, _ = r.Upsert(ctx, "T2", md.TokenFields{DeviceID: "d2", UserID: "user-a", ConsentStatus: md.ConsentDenied})
	_, _, _ = r.Upsert(ctx, "T3", md.TokenFields{DeviceID: "d3", UserID: "user-b", ConsentStatus: md.ConsentGranted})

	res, err := r.FindByUserAndConsent(ctx, "user-a", md.ConsentGranted)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "T1", res[0].FCMToken)
}

func TestRepository_DeleteByDeviceID(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRepo(t)

	_, _, _ = r.Upsert(ctx, "old", md.TokenFields{DeviceID: "device-1", UserID: "u", ConsentStatus: md.ConsentGranted})
	_, _, _ = r.Upsert(ctx, "new", md.TokenFields{DeviceID: "device-1", UserID: "u", ConsentStatus: md.ConsentGranted})

	rec, err := r.DeleteByDeviceID(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "old", rec.FCMToken)
	assert.False(t, mr.Exists(config.TokenKeyPrefix+"old"))

	found, err := r.FindByDeviceID(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "new", found.FCMToken)

	_, err = r.DeleteByDeviceID(ctx, "device-404")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].FCMToken)
}

func TestRepository_ConnectionError(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRepo(t)
	mr.Close()

	_, _, err := r.Upsert(ctx, "T1", md.TokenFields{UserID: "u"})
	assert.Error(t, err)

	_, err = r.FindByDeviceID(ctx, "d")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrNotFound)
}
