package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	goredis "github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// ErrNoSubscriber is reported per target when nobody listens on the token's channel.
var ErrNoSubscriber = errors.New("no subscriber for token")

var ErrUnavailable = errors.New("relay unavailable")

// Sender publishes each notification on a per-token Redis channel. A device agent
// subscribed to push:<token> receives it.
type Sender struct {
	cli *goredis.Client
}

func New(conf config.RedisConfig) *Sender {
	cli := goredis.NewClient(
		&goredis.Options{
			Addr:     conf.Addr,
			Password: conf.Password,
			DB:       conf.DB,
		},
	)

	if _, err := cli.Ping(context.Background()).Result(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}

	zap.L().Info("Push sender initialized in relay mode", zap.String("addr", conf.Addr))
	return &Sender{cli: cli}
}

func NewWithClient(cli *goredis.Client) *Sender {
	return &Sender{cli: cli}
}

func Channel(token string) string {
	return config.RelayChannelPrefix + token
}

// SendMulticast reports per-target outcomes. Targets without a subscriber count as
// failed. It returns an error when the message cannot be encoded or when every
// publish failed to reach Redis.
func (s *Sender) SendMulticast(ctx context.Context, tokens []string, n md.Notification) (*md.SendResult, error) {
	const op = "push.SendMulticast.relay"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.SendResult{Responses: make([]md.SendResponse, 0, len(tokens))}
	var transportErr error
	transportFailures := 0
	for _, token := range tokens {
		msg := md.PushMessage{
			MessageID:    uuid.NewString(),
			Notification: &md.NotificationContent{Title: n.Title, Body: n.Body},
			Data:         n.Data,
		}

		payload, err := json.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		resp := md.SendResponse{Token: token}
		receivers, err := s.cli.Publish(ctx, Channel(token), payload).Result()
		switch {
		case err != nil:
			resp.Error = err.Error()
			transportErr = err
			transportFailures++
		case receivers == 0:
			resp.Error = ErrNoSubscriber.Error()
		default:
			resp.Success = true
			resp.MessageID = msg.MessageID
		}

		if resp.Success {
			res.SuccessCount++
		} else {
			res.FailureCount++
			zap.L().Debug("relay delivery failed", zap.String("op", op), zap.String("error", resp.Error))
		}
		res.Responses = append(res.Responses, resp)
	}

	if len(tokens) > 0 && transportFailures == len(tokens) {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, transportErr)
	}
	return res, nil
}

func (s *Sender) Status() md.SenderStatus {
	return md.SenderStatus{Initialized: s.cli != nil, Mode: config.PushRelay}
}

func (s *Sender) Close() error {
	return s.cli.Close()
}
