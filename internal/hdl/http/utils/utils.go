package utils

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	OK      bool     `json:"ok"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
	Path    string   `json:"path,omitempty"`
	Method  string   `json:"method,omitempty"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	write(w, statusCode, data)
}

func ErrResponse(w http.ResponseWriter, statusCode int, msg string) {
	write(w, statusCode, &ErrorResponse{Message: msg})
}

func ErrorsResponse(w http.ResponseWriter, statusCode int, msg string, errs []string) {
	write(w, statusCode, &ErrorResponse{Message: msg, Errors: errs})
}

// InternalResponse hides err unless detail is true.
func InternalResponse(w http.ResponseWriter, err error, detail bool) {
	res := &ErrorResponse{Message: "Internal server error"}
	if detail && err != nil {
		res.Error = err.Error()
	}
	write(w, http.StatusInternalServerError, res)
}

func RouteResponse(w http.ResponseWriter, r *http.Request, statusCode int, msg string) {
	write(w, statusCode, &ErrorResponse{Message: msg, Path: r.URL.Path, Method: r.Method})
}

func ParseRequest(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes)).Decode(dst)
}

func write(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}
