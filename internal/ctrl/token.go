package ctrl

import (
	"context"
	"errors"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/validation"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	metrics "github.com/Elias-Manica/push-notifications-poc/internal/observability/metrics/prometheus"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type tokenCtrl interface {
	RegisterToken(ctx context.Context, req *dto.RegisterTokenRequest) (*dto.RegisterTokenResponse, error)
	RemoveTokenByDeviceID(ctx context.Context, deviceID string) (*dto.RemoveTokenResponse, error)
	CountTokens(ctx context.Context) (*dto.CountTokensResponse, error)
	ListTokens(ctx context.Context) (*dto.ListTokensResponse, error)
}

type tokenRepo interface {
	Upsert(ctx context.Context, token string, fields md.TokenFields) (md.UpsertAction, *md.DeviceToken, error)
	FindByToken(ctx context.Context, token string) (*md.DeviceToken, error)
	FindByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error)
	FindByUserAndConsent(ctx context.Context, userID string, status md.ConsentStatus) ([]md.DeviceToken, error)
	DeleteByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]md.DeviceToken, error)
}

// RegisterToken validates every field before touching the registry, so an invalid
// request never produces a partial write.
func (c *Controller) RegisterToken(
	ctx context.Context,
	req *dto.RegisterTokenRequest,
) (*dto.RegisterTokenResponse, error) {
	const op = "tokens.RegisterToken.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := validation.RegisterTokenRequest(req); err != nil {
		zap.L().Debug("invalid token registration", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	action, rec, err := c.repo.Upsert(
		ctx, req.FCMToken, md.TokenFields{
			DeviceID:      req.DeviceID,
			UserID:        req.UserID,
			ConsentStatus: md.ConsentStatus(req.ConsentStatus),
		},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to upsert token", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	zap.L().Info(
		"token registered",
		zap.String("action", string(action)),
		zap.String("userID", rec.UserID),
		zap.String("deviceID", rec.DeviceID),
	)
	return &dto.RegisterTokenResponse{OK: true, Action: action, Record: rec}, nil
}

func (c *Controller) RemoveTokenByDeviceID(ctx context.Context, deviceID string) (*dto.RemoveTokenResponse, error) {
	const op = "tokens.RemoveTokenByDeviceID.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.DeleteByDeviceID(ctx, deviceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Debug("no token for device", zap.String("op", op), zap.String("deviceID", deviceID))
			return nil, ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to remove token", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	zap.L().Info("token removed", zap.String("deviceID", deviceID))
	return &dto.RemoveTokenResponse{OK: true, Removed: true, RemovedDeviceID: deviceID}, nil
}

func (c *Controller) CountTokens(ctx context.Context) (*dto.CountTokensResponse, error) {
	const op = "tokens.CountTokens.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	count, err := c.repo.Count(ctx)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count tokens", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	metrics.SetRegisteredTokens(count)
	return &dto.CountTokensResponse{OK: true, Count: count}, nil
}

func (c *Controller) ListTokens(ctx context.Context) (*dto.ListTokensResponse, error) {
	const op = "tokens.ListTokens.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tokens, err := c.repo.List(ctx)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list tokens", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	zap.L().Debug("listing tokens", zap.Int("count", len(tokens)))
	return &dto.ListTokensResponse{OK: true, Tokens: tokens, Count: len(tokens)}, nil
}
