package ctrl

import (
	"context"
	"fmt"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/validation"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	metrics "github.com/Elias-Manica/push-notifications-poc/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type eventCtrl interface {
	SendNotification(ctx context.Context, req *dto.SendNotificationRequest) (*dto.SendNotificationResponse, error)
	SenderStatus(ctx context.Context) *dto.SenderStatusResponse
}

const (
	ResultNoTargets = "no_targets"
	ResultSimulated = "simulated"
	ResultSent      = "sent"
)

func (c *Controller) SendNotification(
	ctx context.Context,
	req *dto.SendNotificationRequest,
) (*dto.SendNotificationResponse, error) {
	const op = "events.SendNotification.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := validation.SendNotificationRequest(req); err != nil {
		return nil, err
	}

	recs, err := c.repo.FindByUserAndConsent(ctx, req.UserID, md.ConsentGranted)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to find user tokens", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	if len(recs) == 0 {
		zap.L().Info("no granted tokens for user", zap.String("userID", req.UserID))
		metrics.ObserveNoTargets()
		return &dto.SendNotificationResponse{
			OK:              true,
			Targets:         []string{},
			SimulatedResult: ResultNoTargets,
			Message:         "No tokens with notification consent found",
		}, nil
	}

	targets := make([]string, 0, len(recs))
	for _, rec := range recs {
		targets = append(targets, rec.FCMToken)
	}

	res, err := c.sender.SendMulticast(
		ctx, targets, md.Notification{
			Title: req.Payload.Title,
			Body:  req.Payload.Body,
			Data:  targetData(req),
		},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to send notification",
			zap.String("op", op),
			zap.String("userID", req.UserID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamSend, err)
	}

	metrics.ObserveDelivery(res.SuccessCount, res.FailureCount)
	zap.L().Info(
		"notification sent",
		zap.String("userID", req.UserID),
		zap.Int("targets", len(targets)),
		zap.Int("success", res.SuccessCount),
		zap.Int("failure", res.FailureCount),
		zap.Bool("mock", res.Mock),
	)

	out := &dto.SendNotificationResponse{
		OK:      true,
		Targets: targets,
		Details: res,
	}
	if res.Mock {
		out.SimulatedResult = ResultSimulated
		out.Message = fmt.Sprintf("Simulated notification sent to %d device(s)", res.SuccessCount)
	} else {
		out.SimulatedResult = ResultSent
		out.Message = fmt.Sprintf(
			"Notification sent to %d device(s) (%d failed)",
			res.SuccessCount,
			res.FailureCount,
		)
	}
	return out, nil
}

func (c *Controller) SenderStatus(ctx context.Context) *dto.SenderStatusResponse {
	return &dto.SenderStatusResponse{OK: true, Status: c.sender.Status()}
}

// targetData copies the caller's data and fills user_id and account_id unless the caller set them.
func targetData(req *dto.SendNotificationRequest) map[string]any {
	data := make(map[string]any, len(req.Payload.Data)+2)
	for k, v := range req.Payload.Data {
		data[k] = v
	}

	if _, ok := data["user_id"]; !ok {
		data["user_id"] = req.UserID
	}
	if _, ok := data["account_id"]; !ok && req.AccountID != "" {
		data["account_id"] = req.AccountID
	}
	return data
}
