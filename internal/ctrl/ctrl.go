package ctrl

import (
	"context"
	"io"

	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
)

type AppRepo interface {
	io.Closer
	tokenRepo
}

type AppCtrl interface {
	tokenCtrl
	eventCtrl
}

// Sender delivers one notification to many push tokens in a single call.
type Sender interface {
	SendMulticast(ctx context.Context, tokens []string, n md.Notification) (*md.SendResult, error)
	Status() md.SenderStatus
}

type Controller struct {
	repo   AppRepo
	sender Sender
}

func New(repo AppRepo, sender Sender) *Controller {
	return &Controller{
		repo:   repo,
		sender: sender,
	}
}
