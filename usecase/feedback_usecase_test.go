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

func newFeedbackUsecaseForTest() (domain.FeedbackUsecase, *mocks.FeedbackRepository) {
	repo := new(mocks.FeedbackRepository)
	return NewFeedbackUsecase(repo, 2*time.Second), repo
}

func TestFeedbackSubmitDerivesType(t *testing.T) {
	cases := []struct {
		name     string
		input    domain.FeedbackInput
		wantType string
	}{
		{"rating only", domain.FeedbackInput{Name: "Ada", Rating: 4}, domain.FeedbackTypeRating},
		{"comment only", domain.FeedbackInput{Name: "Ada", Comment: "Great app"}, domain.FeedbackTypeFeedback},
		{"both", domain.FeedbackInput{Name: "Ada", Rating: 5, Comment: "Great app"}, domain.FeedbackTypeBoth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newFeedbackUsecaseForTest()
			repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

			feedback, err := uc.Submit(context.Background(), tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, feedback.Type)
			assert.False(t, feedback.CreatedAt.IsZero())
		})
	}
}

func TestFeedbackSubmitValidation(t *testing.T) {
	uc, repo := newFeedbackUsecaseForTest()

	_, err := uc.Submit(context.Background(), domain.FeedbackInput{Rating: 3})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Submit(context.Background(), domain.FeedbackInput{Name: "Ada"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Submit(context.Background(), domain.FeedbackInput{Name: "Ada", Rating: 6})
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFeedbackListPaginates(t *testing.T) {
	uc, repo := newFeedbackUsecaseForTest()

	repo.On("Fetch", mock.Anything, "rating", "ada", int64(10), int64(10)).
		Return([]domain.Feedback{{Name: "Ada", Rating: 5, Type: domain.FeedbackTypeRating}}, nil).Once()
	repo.On("Count", mock.Anything, "rating", "ada").Return(int64(11), nil).Once()

	feedback, total, err := uc.List(context.Background(), "rating", "ada", 2, 10)
	require.NoError(t, err)
	assert.Len(t, feedback, 1)
	assert.Equal(t, int64(11), total)

	repo.AssertExpectations(t)
}
