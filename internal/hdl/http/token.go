package http

import (
	"errors"
	"net/http"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/ctrl"
	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/http/utils"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const invalidDataMsg = "Invalid data"

func (h *Handler) registerToken(w http.ResponseWriter, r *http.Request) {
	const op = "tokens.registerToken.hdl"

	req := &dto.RegisterTokenRequest{}
	if err := utils.ParseRequest(w, r, config.MaxBodySize, req); err != nil {
		zap.L().Debug("failed to decode request", zap.String("op", op), zap.Error(err))
		errs := validation.DecodeErrors(req, err)
		if errs == nil {
			errs = validation.Errors{hdl.ErrDecodeRequest.Error()}
		}
		utils.ErrorsResponse(w, http.StatusBadRequest, invalidDataMsg, errs)
		return
	}

	res, err := h.ctrl.RegisterToken(r.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			utils.ErrorsResponse(w, http.StatusBadRequest, invalidDataMsg, verrs)
			return
		}
		utils.InternalResponse(w, err, !h.conf.IsProduction())
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) removeToken(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	if deviceID == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg.Error())
		return
	}

	res, err := h.ctrl.RemoveTokenByDeviceID(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, "Device not found")
			return
		}
		utils.InternalResponse(w, err, !h.conf.IsProduction())
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) countTokens(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.CountTokens(r.Context())
	if err != nil {
		utils.InternalResponse(w, err, !h.conf.IsProduction())
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) listTokens(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListTokens(r.Context())
	if err != nil {
		utils.InternalResponse(w, err, !h.conf.IsProduction())
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
