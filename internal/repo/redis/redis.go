package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo"
	goredis "github.com/go-redis/redis/v8"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Each token is a hash under tokenKeyPrefix+token. The sorted set indexKey holds every token
// scored by a creation sequence, which gives the same insertion order as the memory backend.
var upsertScript = goredis.NewScript(`
local key = KEYS[1]
local index = KEYS[2]
local seq = KEYS[3]
local action = "updated"

if redis.call("EXISTS", key) == 0 then
  action = "created"
  redis.call("HSET", key, "fcm_token", ARGV[1])
  redis.call("ZADD", index, redis.call("INCR", seq), ARGV[1])
end

if ARGV[2] ~= "" then redis.call("HSET", key, "device_id", ARGV[2]) end
if ARGV[3] ~= "" then redis.call("HSET", key, "user_id", ARGV[3]) end
if ARGV[4] ~= "" then redis.call("HSET", key, "notification_consent_status", ARGV[4]) end
redis.call("HSET", key, "last_updated_at", ARGV[5])

local out = redis.call("HGETALL", key)
table.insert(out, 1, action)
return out
`)

var deleteByDeviceScript = goredis.NewScript(`
local index = KEYS[1]
local tokens = redis.call("ZRANGE", index, 0, -1)

for _, token in ipairs(tokens) do
  local key = ARGV[2] .. token
  if redis.call("HGET", key, "device_id") == ARGV[1] then
    local out = redis.call("HGETALL", key)
    redis.call("DEL", key)
    redis.call("ZREM", index, token)
    return out
  end
end

return false
`)

const seqKeySuffix = ":seq"

type Repository struct {
	cli *goredis.Client
	now func() time.Time
}

func New(conf config.RedisConfig) *Repository {
	cli := goredis.NewClient(
		&goredis.Options{
			Addr:     conf.Addr,
			Password: conf.Password,
			DB:       conf.DB,
		},
	)

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.String("addr", conf.Addr), zap.Error(err))
	}

	return NewWithClient(cli)
}

func NewWithClient(cli *goredis.Client) *Repository {
	return &Repository{cli: cli, now: time.Now}
}

func (r *Repository) Upsert(
	ctx context.Context,
	token string,
	fields md.TokenFields,
) (md.UpsertAction, *md.DeviceToken, error) {
	const op = "tokens.Upsert.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := upsertScript.Run(
		ctx,
		r.cli,
		[]string{tokenKey(token), config.TokenSetKey, config.TokenSetKey + seqKeySuffix},
		token,
		fields.DeviceID,
		fields.UserID,
		string(fields.ConsentStatus),
		r.now().UTC().Format(time.RFC3339Nano),
	).StringSlice()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to upsert token", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}

	if len(res) == 0 {
		return "", nil, fmt.Errorf("%s: empty script reply", op)
	}

	rec, err := decodeToken(pairs(res[1:]))
	if err != nil {
		return "", nil, err
	}

	return md.UpsertAction(res[0]), rec, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*md.DeviceToken, error) {
	const op = "tokens.FindByToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	fields, err := r.cli.HGetAll(ctx, tokenKey(token)).Result()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	if len(fields) == 0 {
		return nil, repo.ErrNotFound
	}
	return decodeToken(fields)
}

func (r *Repository) FindByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error) {
	const op = "tokens.FindByDeviceID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	all, err := r.scan(ctx)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	for i := range all {
		if all[i].DeviceID == deviceID {
			return &all[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *Repository) FindByUserAndConsent(
	ctx context.Context,
	userID string,
	status md.ConsentStatus,
) ([]md.DeviceToken, error) {
	const op = "tokens.FindByUserAndConsent.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	all, err := r.scan(ctx)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	res := make([]md.DeviceToken, 0)
	for _, rec := range all {
		if rec.UserID == userID && rec.ConsentStatus == status {
			res = append(res, rec)
		}
	}
	return res, nil
}

func (r *Repository) DeleteByDeviceID(ctx context.Context, deviceID string) (*md.DeviceToken, error) {
	const op = "tokens.DeleteByDeviceID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := deleteByDeviceScript.Run(
		ctx,
		r.cli,
		[]string{config.TokenSetKey},
		deviceID,
		config.TokenKeyPrefix,
	).StringSlice()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete token", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return decodeToken(pairs(res))
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	const op = "tokens.Count.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.cli.ZCard(ctx, config.TokenSetKey).Result()
}

func (r *Repository) List(ctx context.Context) ([]md.DeviceToken, error) {
	const op = "tokens.List.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.scan(ctx)
}

func (r *Repository) Close() error {
	return r.cli.Close()
}

// scan reads every token in insertion order. Linear, like the other backends.
func (r *Repository) scan(ctx context.Context) ([]md.DeviceToken, error) {
	tokens, err := r.cli.ZRange(ctx, config.TokenSetKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return []md.DeviceToken{}, nil
	}

	cmds := make([]*goredis.StringStringMapCmd, len(tokens))
	_, err = r.cli.Pipelined(
		ctx, func(p goredis.Pipeliner) error {
			for i, token := range tokens {
				cmds[i] = p.HGetAll(ctx, tokenKey(token))
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	res := make([]md.DeviceToken, 0, len(tokens))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		rec, err := decodeToken(fields)
		if err != nil {
			return nil, err
		}
		res = append(res, *rec)
	}
	return res, nil
}

func tokenKey(token string) string {
	return config.TokenKeyPrefix + token
}

func pairs(flat []string) map[string]string {
	res := make(map[string]string, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		res[flat[i]] = flat[i+1]
	}
	return res
}

func decodeToken(fields map[string]string) (*md.DeviceToken, error) {
	rec := &md.DeviceToken{
		FCMToken:      fields["fcm_token"],
		DeviceID:      fields["device_id"],
		UserID:        fields["user_id"],
		ConsentStatus: md.ConsentStatus(fields["notification_consent_status"]),
	}

	if raw := fields["last_updated_at"]; raw != "" {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("decode last_updated_at: %w", err)
		}
		rec.LastUpdatedAt = ts
	}
	return rec, nil
}
