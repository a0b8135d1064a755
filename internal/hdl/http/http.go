package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/ctrl"
	mid "github.com/Elias-Manica/push-notifications-poc/internal/hdl/http/middleware"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	srv    *http.Server
	ctrl   ctrl.AppCtrl
	conf   config.Config
}

func New(ctrl ctrl.AppCtrl, conf config.Config) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		ctrl:   ctrl,
		conf:   conf,
	}

	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.CORS(conf.Server.FrontendURL),
		mid.Prometheus,
		mid.OT,
	)
	h.RegisterRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: config.DefaultWriteTimeout,
		ReadTimeout:  config.DefaultReadTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
