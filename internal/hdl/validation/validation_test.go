package validation

import (
	"errors"
	"testing"

	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTokenRequest(t *testing.T) {
	tests := []struct {
		name   string
		req    *dto.RegisterTokenRequest
		expMsg []string
	}{
		{
			name: "Valid",
			req: &dto.RegisterTokenRequest{
				FCMToken:      "tok-1",
				DeviceID:      "dev-1",
				UserID:        "user-a",
				ConsentStatus: "granted",
			},
		},
		{
			name: "AllMissing",
			req:  &dto.RegisterTokenRequest{},
			expMsg: []string{
				"fcm_token is required",
				"device_id is required",
				"user_id is required",
				"notification_consent_status is required",
			},
		},
		{
			name: "BadConsent",
			req: &dto.RegisterTokenRequest{
				FCMToken:      "tok-1",
				DeviceID:      "dev-1",
				UserID:        "user-a",
				ConsentStatus: "maybe",
			},
			expMsg: []string{"notification_consent_status must be one of: granted, denied, default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RegisterTokenRequest(tt.req)
			if tt.expMsg == nil {
				assert.NoError(t, err)
				return
			}

			var verrs Errors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, Errors(tt.expMsg), verrs)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestSendNotificationRequest(t *testing.T) {
	err := SendNotificationRequest(
		&dto.SendNotificationRequest{
			UserID:  "user-a",
			Payload: dto.NotificationPayload{Title: "hi"},
		},
	)

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, Errors{"notification_payload.body is required"}, verrs)

	err = SendNotificationRequest(
		&dto.SendNotificationRequest{
			UserID:  "user-a",
			Payload: dto.NotificationPayload{Title: "hi", Body: "there"},
		},
	)
	assert.NoError(t, err)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		dst  any
		body string
		exp  Errors
	}{
		{
			name: "NumberForString",
			dst:  &dto.RegisterTokenRequest{},
			body: `{"fcm_token":123,"device_id":"dev-1"}`,
			exp:  Errors{"fcm_token must be a string"},
		},
		{
			name: "NestedField",
			dst:  &dto.SendNotificationRequest{},
			body: `{"user_id":"user-a","notification_payload":{"title":5,"body":"b"}}`,
			exp:  Errors{"notification_payload.title must be a string"},
		},
		{
			name: "SyntaxError",
			dst:  &dto.RegisterTokenRequest{},
			body: `{invalid`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.dst)
			require.Error(t, err)
			assert.Equal(t, tt.exp, DecodeErrors(tt.dst, err))
		})
	}
}
