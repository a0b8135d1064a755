package models

import "time"

type ConsentStatus string

const (
	ConsentGranted ConsentStatus = "granted"
	ConsentDenied  ConsentStatus = "denied"
	ConsentDefault ConsentStatus = "default"
)

func (s ConsentStatus) Valid() bool {
	switch s {
	case ConsentGranted, ConsentDenied, ConsentDefault:
		return true
	}
	return false
}

type UpsertAction string

const (
	ActionCreated UpsertAction = "created"
	ActionUpdated UpsertAction = "updated"
)

// DeviceToken is one registered push token. FCMToken is the unique key.
type DeviceToken struct {
	FCMToken      string        `db:"fcm_token"                   json:"fcm_token"`
	DeviceID      string        `db:"device_id"                   json:"device_id"`
	UserID        string        `db:"user_id"                     json:"user_id"`
	ConsentStatus ConsentStatus `db:"notification_consent_status" json:"notification_consent_status"`
	LastUpdatedAt time.Time     `db:"last_updated_at"             json:"last_updated_at"`
}

// TokenFields is a partial record. Empty fields leave the stored value untouched.
type TokenFields struct {
	DeviceID      string
	UserID        string
	ConsentStatus ConsentStatus
}

// Merge applies f on top of t and stamps the update time.
func (t DeviceToken) Merge(f TokenFields, now time.Time) DeviceToken {
	if f.DeviceID != "" {
		t.DeviceID = f.DeviceID
	}
	if f.UserID != "" {
		t.UserID = f.UserID
	}
	if f.ConsentStatus != "" {
		t.ConsentStatus = f.ConsentStatus
	}
	t.LastUpdatedAt = now
	return t
}
