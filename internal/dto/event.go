package dto

import md "github.com/Elias-Manica/push-notifications-poc/internal/models"

type SendNotificationRequest struct {
	UserID    string              `json:"user_id"              validate:"required"`
	AccountID string              `json:"account_id,omitempty"`
	Payload   NotificationPayload `json:"notification_payload"`
}

type NotificationPayload struct {
	Title string         `json:"title"          validate:"required"`
	Body  string         `json:"body"           validate:"required"`
	Data  map[string]any `json:"data,omitempty"`
}

type SendNotificationResponse struct {
	OK              bool           `json:"ok"`
	Targets         []string       `json:"targets"`
	SimulatedResult string         `json:"simulatedResult"`
	Message         string         `json:"message"`
	Details         *md.SendResult `json:"details,omitempty"`
}

type SenderStatusResponse struct {
	OK     bool            `json:"ok"`
	Status md.SenderStatus `json:"status"`
}
