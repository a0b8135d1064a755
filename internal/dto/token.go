package dto

import md "github.com/Elias-Manica/push-notifications-poc/internal/models"

type RegisterTokenRequest struct {
	FCMToken      string `json:"fcm_token"                   validate:"required"`
	DeviceID      string `json:"device_id"                   validate:"required"`
	UserID        string `json:"user_id"                     validate:"required"`
	ConsentStatus string `json:"notification_consent_status" validate:"required,oneof=granted denied default"`
}

type RegisterTokenResponse struct {
	OK     bool            `json:"ok"`
	Action md.UpsertAction `json:"action"`
	Record *md.DeviceToken `json:"record"`
}

type RemoveTokenResponse struct {
	OK              bool   `json:"ok"`
	Removed         bool   `json:"removed"`
	RemovedDeviceID string `json:"removedDeviceId"`
}

type CountTokensResponse struct {
	OK    bool  `json:"ok"`
	Count int64 `json:"count"`
}

type ListTokensResponse struct {
	OK     bool             `json:"ok"`
	Tokens []md.DeviceToken `json:"tokens"`
	Count  int              `json:"count"`
}
