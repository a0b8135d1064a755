package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "code"},
	)

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"operation", "code"},
	)

	deliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_deliveries_total",
			Help: "Push delivery attempts per target, by outcome.",
		},
		[]string{"outcome"},
	)

	registeredTokens = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "registered_tokens",
			Help: "Number of tokens in the registry at the last count.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestDuration, requestsTotal, deliveriesTotal, registeredTokens)
}

type Metrics struct {
	srv *http.Server
}

func New(port int) *Metrics {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metrics{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: config.DefaultReadTimeout,
		},
	}
}

// Start serves /metrics until ctx is done.
func (m *Metrics) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := m.srv.Shutdown(sctx); err != nil {
			zap.L().Warn("Failed to shutdown metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", m.srv.Addr))
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Metrics server error", zap.Error(err))
	}
}

func ObserveRequest(d time.Duration, status int, op string) {
	code := strconv.Itoa(status)
	requestDuration.WithLabelValues(op, code).Observe(d.Seconds())
	requestsTotal.WithLabelValues(op, code).Inc()
}

func ObserveDelivery(success, failure int) {
	deliveriesTotal.WithLabelValues("success").Add(float64(success))
	deliveriesTotal.WithLabelValues("failure").Add(float64(failure))
}

func ObserveNoTargets() {
	deliveriesTotal.WithLabelValues("no_targets").Inc()
}

func SetRegisteredTokens(n int64) {
	registeredTokens.Set(float64(n))
}
