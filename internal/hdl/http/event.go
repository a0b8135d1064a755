package http

import (
	"errors"
	"net/http"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/http/utils"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/validation"
	"go.uber.org/zap"
)

func (h *Handler) sendNotification(w http.ResponseWriter, r *http.Request) {
	const op = "events.sendNotification.hdl"

	req := &dto.SendNotificationRequest{}
	if err := utils.ParseRequest(w, r, config.MaxBodySize, req); err != nil {
		zap.L().Debug("failed to decode request", zap.String("op", op), zap.Error(err))
		errs := validation.DecodeErrors(req, err)
		if errs == nil {
			errs = validation.Errors{hdl.ErrDecodeRequest.Error()}
		}
		utils.ErrorsResponse(w, http.StatusBadRequest, invalidDataMsg, errs)
		return
	}

	res, err := h.ctrl.SendNotification(r.Context(), req)
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

func (h *Handler) senderStatus(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, http.StatusOK, h.ctrl.SenderStatus(r.Context()))
}
