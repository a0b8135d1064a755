package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/Elias-Manica/push-notifications-poc/internal/hdl/validation"
	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo"
	"github.com/Elias-Manica/push-notifications-poc/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_RegisterToken(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockSender := mocks.NewMockSender(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockRepo, mockSender)

	validReq := &dto.RegisterTokenRequest{
		FCMToken:      "tok-1",
		DeviceID:      "dev-1",
		UserID:        "user-a",
		ConsentStatus: "granted",
	}
	fields := md.TokenFields{DeviceID: "dev-1", UserID: "user-a", ConsentStatus: md.ConsentGranted}
	rec := &md.DeviceToken{
		FCMToken:      "tok-1",
		DeviceID:      "dev-1",
		UserID:        "user-a",
		ConsentStatus: md.ConsentGranted,
		LastUpdatedAt: time.Now(),
	}
	dbErr := errors.New("database error")

	tests := []struct {
		name     string
		req      *dto.RegisterTokenRequest
		setup    func()
		expected *dto.RegisterTokenResponse
		err      error
	}{
		{
			name: "Created",
			req:  validReq,
			setup: func() {
				mockRepo.EXPECT().Upsert(gomock.Any(), "tok-1", fields).Return(md.ActionCreated, rec, nil)
			},
			expected: &dto.RegisterTokenResponse{OK: true, Action: md.ActionCreated, Record: rec},
		},
		{
			name: "Updated",
			req:  validReq,
			setup: func() {
				mockRepo.EXPECT().Upsert(gomock.Any(), "tok-1", fields).Return(md.ActionUpdated, rec, nil)
			},
			expected: &dto.RegisterTokenResponse{OK: true, Action: md.ActionUpdated, Record: rec},
		},
		{
			name: "InvalidNoWrite",
			req: &dto.RegisterTokenRequest{
				FCMToken:      "tok-1",
				UserID:        "user-a",
				ConsentStatus: "yes",
			},
			err: validation.ErrInvalidRequest,
		},
		{
			name: "RepositoryError",
			req:  validReq,
			setup: func() {
				mockRepo.EXPECT().Upsert(gomock.Any(), "tok-1", fields).Return(md.UpsertAction(""), nil, dbErr)
			},
			err: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			res, err := ctrl.RegisterToken(ctx, tt.req)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestController_RegisterToken_CollectsAllErrors(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	ctrl := New(mocks.NewMockAppRepo(ctrlMock), mocks.NewMockSender(ctrlMock))

	_, err := ctrl.RegisterToken(context.Background(), &dto.RegisterTokenRequest{ConsentStatus: "maybe"})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
}

func TestController_RemoveTokenByDeviceID(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	ctx := context.Background()
	ctrl := New(mockRepo, mocks.NewMockSender(ctrlMock))
	dbErr := errors.New("database error")

	tests := []struct {
		name     string
		setup    func()
		expected *dto.RemoveTokenResponse
		err      error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().DeleteByDeviceID(gomock.Any(), "dev-1").Return(&md.DeviceToken{DeviceID: "dev-1"}, nil)
			},
			expected: &dto.RemoveTokenResponse{OK: true, Removed: true, RemovedDeviceID: "dev-1"},
		},
		{
			name: "ErrNotFound",
			setup: func() {
				mockRepo.EXPECT().DeleteByDeviceID(gomock.Any(), "dev-1").Return(nil, repo.ErrNotFound)
			},
			err: ErrNotFound,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().DeleteByDeviceID(gomock.Any(), "dev-1").Return(nil, dbErr)
			},
			err: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.RemoveTokenByDeviceID(ctx, "dev-1")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestController_CountTokens(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	ctrl := New(mockRepo, mocks.NewMockSender(ctrlMock))

	mockRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	res, err := ctrl.CountTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.CountTokensResponse{OK: true, Count: 2}, res)

	mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("boom"))
	_, err = ctrl.CountTokens(context.Background())
	assert.Error(t, err)
}

func TestController_ListTokens(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	ctrl := New(mockRepo, mocks.NewMockSender(ctrlMock))

	tokens := []md.DeviceToken{{FCMToken: "a"}, {FCMToken: "b"}}
	mockRepo.EXPECT().List(gomock.Any()).Return(tokens, nil)

	res, err := ctrl.ListTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, tokens, res.Tokens)
}
