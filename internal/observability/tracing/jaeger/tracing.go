package jaeger

import (
	"context"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
)

// Start installs a Jaeger tracer as the global opentracing tracer and closes it when ctx is done.
// When tracing is disabled the no-op global tracer stays in place.
func Start(ctx context.Context, serviceName string, conf config.JaegerConfig) {
	if !conf.Enabled {
		zap.L().Debug("Jaeger tracing disabled")
		return
	}

	tracerCfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Sampler.Type,
			Param: conf.Sampler.Param,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := tracerCfg.NewTracer()
	if err != nil {
		zap.L().Error("Error initializing Jaeger tracer", zap.Error(err))
		return
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info("Jaeger has been started", zap.String("agent", conf.Reporter.LocalAgentHostPort))
	<-ctx.Done()

	if err = closer.Close(); err != nil {
		zap.L().Debug("Error shutting down Jaeger", zap.Error(err))
	}
	zap.L().Info("Jaeger has been stopped")
}
