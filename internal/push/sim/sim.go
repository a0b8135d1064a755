package sim

import (
	"context"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Sender pretends every target accepted the notification.
type Sender struct{}

func New() *Sender {
	zap.L().Info("Push sender initialized in simulation mode")
	return &Sender{}
}

func (s *Sender) SendMulticast(ctx context.Context, tokens []string, n md.Notification) (*md.SendResult, error) {
	const op = "push.SendMulticast.sim"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.SendResult{
		SuccessCount: len(tokens),
		Responses:    make([]md.SendResponse, 0, len(tokens)),
		Mock:         true,
	}
	for _, token := range tokens {
		res.Responses = append(
			res.Responses, md.SendResponse{
				Token:     token,
				Success:   true,
				MessageID: "mock-message-id-" + uuid.NewString(),
			},
		)
	}

	zap.L().Debug(
		"simulated multicast",
		zap.Int("targets", len(tokens)),
		zap.String("title", n.Title),
		zap.Any("data", n.Data),
	)
	return res, nil
}

func (s *Sender) Status() md.SenderStatus {
	return md.SenderStatus{Initialized: true, Mode: config.PushSimulated, Mock: true}
}
