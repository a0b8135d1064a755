package http

import (
	"net/http"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterRoutes() {
	h.router.NotFound(h.notFound)
	h.router.MethodNotAllowed(h.methodNotAllowed)

	h.router.Get("/", h.index)
	h.router.Get("/health", h.health)

	api := func(r chi.Router) {
		r.Post("/notifications/tokens", h.registerToken)
		r.Get("/notifications/tokens", h.listTokens)
		r.Get("/notifications/tokens/count", h.countTokens)
		r.Delete("/notifications/tokens/{device_id}", h.removeToken)
		r.Post("/events/enviar", h.sendNotification)
		r.Get("/events/status", h.senderStatus)
	}

	h.router.Group(api)
	if p := h.conf.Server.APIPrefix; p != "" && p != "/" {
		h.router.Route(p, api)
	}
}

type healthResponse struct {
	OK        bool      `json:"ok"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type indexResponse struct {
	OK        bool              `json:"ok"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(
		w, http.StatusOK, &healthResponse{
			OK:        true,
			Message:   "OK",
			Timestamp: time.Now().UTC(),
			Version:   h.conf.Version,
		},
	)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	p := h.conf.Server.APIPrefix
	utils.SuccessResponse(
		w, http.StatusOK, &indexResponse{
			OK:      true,
			Message: h.conf.ServiceName,
			Version: h.conf.Version,
			Endpoints: map[string]string{
				"health":           "GET /health",
				"registerToken":    "POST " + p + "/notifications/tokens",
				"listTokens":       "GET " + p + "/notifications/tokens",
				"countTokens":      "GET " + p + "/notifications/tokens/count",
				"removeToken":      "DELETE " + p + "/notifications/tokens/{device_id}",
				"sendNotification": "POST " + p + "/events/enviar",
				"senderStatus":     "GET " + p + "/events/status",
			},
		},
	)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.RouteResponse(w, r, http.StatusNotFound, "Route not found")
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.RouteResponse(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}
