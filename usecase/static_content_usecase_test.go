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

func TestStaticContentPutUpserts(t *testing.T) {
	repo := new(mocks.StaticContentRepository)
	uc := NewStaticContentUsecase(repo, 2*time.Second)

	stored := &domain.StaticContent{Content: "We respect your privacy.", LastUpdated: time.Now()}
	repo.On("Upsert", mock.Anything, "We respect your privacy.").Return(stored, nil).Once()

	content, err := uc.Put(context.Background(), "We respect your privacy.")
	require.NoError(t, err)
	assert.Equal(t, stored, content)

	repo.AssertExpectations(t)
}

func TestStaticContentPutRequiresContent(t *testing.T) {
	repo := new(mocks.StaticContentRepository)
	uc := NewStaticContentUsecase(repo, 2*time.Second)

	_, err := uc.Put(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestStaticContentGetUnpublished(t *testing.T) {
	repo := new(mocks.StaticContentRepository)
	uc := NewStaticContentUsecase(repo, 2*time.Second)

	repo.On("Get", mock.Anything).Return(nil, nil).Once()

	content, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, content)
}
