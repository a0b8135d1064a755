// Command agent runs the client side against a live server: it logs in, listens
// for pushes on the relay and runs each through the background agent.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/agent"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/api"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/app"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/host"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/notify"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/session"
	"github.com/Elias-Manica/push-notifications-poc/internal/client/storage/sqlite"
	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/push/relay"
	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const configPath = ".env"

func main() {
	conf := config.MustLoad(configPath)
	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pushToken := conf.Agent.PushToken
	if pushToken == "" {
		pushToken = uuid.NewString()
	}

	store := session.New(sqlite.New(conf.Agent.StoragePath))
	tray := notify.NewTray(
		func(target string) {
			zap.L().Info("opening app", zap.String("target", target))
		},
	)
	h := host.New(
		func() *agent.Agent {
			return agent.New(store, tray)
		},
	)
	h.Start(ctx)

	page := app.New(store, api.New(conf.Agent.APIURL), h, pushToken)
	if _, err := page.Load(ctx); err != nil {
		zap.L().Fatal("failed to load app", zap.Error(err))
	}
	if _, err := page.Login(ctx, conf.Agent.UserID, conf.Agent.AccountID); err != nil {
		zap.L().Fatal("failed to log in", zap.Error(err))
	}

	cli := goredis.NewClient(
		&goredis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		},
	)
	defer func() {
		if err := cli.Close(); err != nil {
			zap.L().Warn("failed to close redis client", zap.Error(err))
		}
	}()

	zap.L().Info(
		"listening for pushes",
		zap.String("token", pushToken),
		zap.String("userID", conf.Agent.UserID),
		zap.String("accountID", conf.Agent.AccountID),
	)
	err := relay.Subscribe(
		ctx, cli, pushToken, func(payload []byte) {
			d := h.Dispatch(ctx, payload)
			zap.L().Info("push handled", zap.Bool("shown", d.Show), zap.String("reason", string(d.Reason)))
		},
	)
	if err != nil {
		zap.L().Error("relay subscription failed", zap.Error(err))
	}

	// ctx is cancelled at this point; logout still has to reach the server.
	logoutCtx := context.WithoutCancel(ctx)
	if err = page.Logout(logoutCtx); err != nil {
		zap.L().Warn("logout failed", zap.Error(err))
	}
	h.Evict()
}
