package memory

import (
	"context"
	"sync"
	"time"

	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Repository keeps device tokens in process memory. Iteration follows insertion order,
// so "first match" lookups by device id are deterministic.
type Repository struct {
	mu     sync.RWMutex
	tokens map[string]md.DeviceToken
	order  []string
	now    func() time.Time
}

func New() *Repository {
	zap.L().Info("In-memory token registry initialized")
	return &Repository{
		tokens: make(map[string]md.DeviceToken),
		now:    time.Now,
	}
}

func (r *Repository) Upsert(
	ctx context.Context,
	token string,
	fields md.TokenFields,
) (md.UpsertAction, *md.DeviceToken, error) {
	const op = "tokens.Upsert.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tokens[token]
	if !ok {
		existing = md.DeviceToken{FCMToken: token}
		r.order = append(r.order, token)
	}

	rec := existing.Merge(fields, r.now().UTC())
	r.tokens[token] = rec

	action := md.ActionUpdated
	if !ok {
		action = md.ActionCreated
	}

	zap.L().Debug(
		"token upserted",
		zap.String("op", op),
		zap.String("action", string(action)),
		zap.String("userID", rec.UserID),
	)

	return action, &rec, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*md.DeviceToken, error) {
	const op = "tokens.FindByToken.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.tokens[token]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &rec, nil
}

func (r *Repository) FindByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error) {
	const op = "tokens.FindByDeviceID.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexByDeviceLocked(deviceID)
	if idx < 0 {
		return nil, repo.ErrNotFound
	}

	rec := r.tokens[r.order[idx]]
	return &rec, nil
}

func (r *Repository) FindByUserAndConsent(
	ctx context.Context,
	userID string,
	status md.ConsentStatus,
) ([]md.DeviceToken, error) {
	const op = "tokens.FindByUserAndConsent.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]md.DeviceToken, 0)
	for _, token := range r.order {
		rec := r.tokens[token]
		if rec.UserID == userID && rec.ConsentStatus == status {
			res = append(res, rec)
		}
	}
	return res, nil
}

func (r *Repository) DeleteByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error) {
	const op = "tokens.DeleteByDeviceID.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByDeviceLocked(deviceID)
	if idx < 0 {
		return nil, repo.ErrNotFound
	}

	token := r.order[idx]
	rec := r.tokens[token]
	delete(r.tokens, token)
	r.order = append(r.order[:idx], r.order[idx+1:]...)

	zap.L().Debug("token removed by device id", zap.String("op", op), zap.String("deviceID", deviceID))
	return &rec, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.tokens)), nil
}

func (r *Repository) List(ctx context.Context) ([]md.DeviceToken, error) {
	const op = "tokens.List.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]md.DeviceToken, 0, len(r.order))
	for _, token := range r.order {
		res = append(res, r.tokens[token])
	}
	return res, nil
}

func (r *Repository) Close() error {
	return nil
}

func (r *Repository) indexByDeviceLocked(deviceID string) int {
	for i, token := range r.order {
		if r.tokens[token].DeviceID == deviceID {
			return i
		}
	}
	return -1
}
