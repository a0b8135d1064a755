package relay

import (
	"context"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Subscribe listens on the token's channel and calls fn with each raw payload until
// ctx is done. Payloads are passed through undecoded.
func Subscribe(ctx context.Context, cli *goredis.Client, token string, fn func(payload []byte)) error {
	sub := cli.Subscribe(ctx, Channel(token))
	defer func() {
		if err := sub.Close(); err != nil {
			zap.L().Debug("failed to close subscription", zap.Error(err))
		}
	}()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			fn([]byte(msg.Payload))
		}
	}
}
