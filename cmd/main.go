package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/ctrl"
	hdl "github.com/Elias-Manica/push-notifications-poc/internal/hdl/http"
	"github.com/Elias-Manica/push-notifications-poc/internal/observability/metrics/prometheus"
	"github.com/Elias-Manica/push-notifications-poc/internal/observability/tracing/jaeger"
	"github.com/Elias-Manica/push-notifications-poc/internal/push/relay"
	"github.com/Elias-Manica/push-notifications-poc/internal/push/sim"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo/db"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo/memory"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo/redis"
	"go.uber.org/zap"
)

const configPath = ".env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	default:
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func mustRegistry(conf config.Config) ctrl.AppRepo {
	switch conf.Registry.Backend {
	case config.RegistryMemory:
		return memory.New()
	case config.RegistryRedis:
		return redis.New(conf.Redis)
	case config.RegistryPostgres:
		return db.New(conf.DB)
	default:
		zap.L().Fatal("unknown registry backend", zap.String("backend", conf.Registry.Backend))
		return nil
	}
}

type sender interface {
	ctrl.Sender
	io.Closer
}

type simSender struct {
	*sim.Sender
}

func (simSender) Close() error {
	return nil
}

func mustSender(conf config.Config) sender {
	switch conf.Push.Mode {
	case config.PushSimulated:
		return simSender{sim.New()}
	case config.PushRelay:
		return relay.New(conf.Redis)
	default:
		zap.L().Fatal("unknown push mode", zap.String("mode", conf.Push.Mode))
		return nil
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	repo := mustRegistry(conf)
	push := mustSender(conf)
	svc := ctrl.New(repo, push)
	h := hdl.New(svc, conf)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
		zap.String("registry", conf.Registry.Backend),
		zap.String("push", conf.Push.Mode),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := push.Close(); err != nil {
		zap.L().Warn("Error closing push sender", zap.Error(err))
	}

	if err := repo.Close(); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}
}
