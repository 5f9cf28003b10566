package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/domain/mocks"
)

func TestNotificationTokenStoreCreates(t *testing.T) {
	repo := new(mocks.NotificationTokenRepository)
	uc := NewNotificationTokenUsecase(repo, 2*time.Second)

	repo.On("GetByToken", mock.Anything, "device-token-1").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	token, created, err := uc.Store(context.Background(), "device-token-1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "device-token-1", token.Token)

	repo.AssertExpectations(t)
}

func TestNotificationTokenStoreExistingIsIdempotent(t *testing.T) {
	repo := new(mocks.NotificationTokenRepository)
	uc := NewNotificationTokenUsecase(repo, 2*time.Second)

	existing := &domain.NotificationToken{Token: "device-token-1", CreatedAt: time.Now()}
	repo.On("GetByToken", mock.Anything, "device-token-1").Return(existing, nil).Once()

	token, created, err := uc.Store(context.Background(), "device-token-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, token)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotificationTokenStoreRequiresToken(t *testing.T) {
	repo := new(mocks.NotificationTokenRepository)
	uc := NewNotificationTokenUsecase(repo, 2*time.Second)

	_, _, err := uc.Store(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "GetByToken", mock.Anything, mock.Anything)
}
