package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type upsertRow struct {
	md.DeviceToken
	Inserted bool `db:"inserted"`
}

var now = time.Now

func (r *Repository) Upsert(
	ctx context.Context,
	token string,
	fields md.TokenFields,
) (md.UpsertAction, *md.DeviceToken, error) {
	const op = "tokens.Upsert.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	row := upsertRow{}
	err := r.conn.QueryRowxContext(
		ctx,
		tokenUpsertQ,
		token,
		fields.DeviceID,
		fields.UserID,
		string(fields.ConsentStatus),
		now().UTC(),
	).StructScan(&row)
	if err != nil {
		zap.L().Debug("failed to upsert token", zap.String("op", op), zap.Error(err))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	action := md.ActionUpdated
	if row.Inserted {
		action = md.ActionCreated
	}
	return action, &row.DeviceToken, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*md.DeviceToken, error) {
	const op = "tokens.FindByToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getOne(ctx, op, tokenGetByFCMQ, token)
}

func (r *Repository) FindByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error) {
	const op = "tokens.FindByDeviceID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getOne(ctx, op, tokenGetByDeviceQ, deviceID)
}

func (r *Repository) FindByUserAndConsent(
	ctx context.Context,
	userID string,
	status md.ConsentStatus,
) ([]md.DeviceToken, error) {
	const op = "tokens.FindByUserAndConsent.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.DeviceToken, 0)
	if err := r.conn.SelectContext(ctx, &res, tokenListByUserConsentQ, userID, string(status)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (r *Repository) DeleteByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error) {
	const op = "tokens.DeleteByDeviceID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rec, err := r.getOne(ctx, op, tokenDeleteByDeviceQ, deviceID)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("token removed by device id", zap.String("op", op), zap.String("deviceID", deviceID))
	return rec, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	const op = "tokens.Count.repo"

	var count int64
	if err := r.conn.GetContext(ctx, &count, tokenCountQ); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

func (r *Repository) List(ctx context.Context) ([]md.DeviceToken, error) {
	const op = "tokens.List.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.DeviceToken, 0)
	if err := r.conn.SelectContext(ctx, &res, tokenListQ); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (r *Repository) getOne(ctx context.Context, op, query string, arg any) (*md.DeviceToken, error) {
	res := &md.DeviceToken{}
	err := r.conn.QueryRowxContext(ctx, query, arg).StructScan(res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repo.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}
