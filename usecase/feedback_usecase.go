package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/soundvault/soundvault-backend/domain"
)

type feedbackUsecase struct {
	feedbackRepository domain.FeedbackRepository
	contextTimeout     time.Duration
}

func NewFeedbackUsecase(feedbackRepository domain.FeedbackRepository, timeout time.Duration) domain.FeedbackUsecase {
	return &feedbackUsecase{
		feedbackRepository: feedbackRepository,
		contextTimeout:     timeout,
	}
}

func (uc *feedbackUsecase) Submit(ctx context.Context, input domain.FeedbackInput) (*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Rating == 0 && input.Comment == "" {
		return nil, fmt.Errorf("%w: rating or comment is required", domain.ErrValidation)
	}
	if input.Rating != 0 && (input.Rating < 1 || input.Rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	feedbackType := domain.FeedbackTypeBoth
	switch {
	case input.Comment == "":
		feedbackType = domain.FeedbackTypeRating
	case input.Rating == 0:
		feedbackType = domain.FeedbackTypeFeedback
	}

	feedback := &domain.Feedback{
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Type:      feedbackType,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.feedbackRepository.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (uc *feedbackUsecase) List(ctx context.Context, typeFilter, nameFilter string, page, limit int64) ([]domain.Feedback, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	feedback, err := uc.feedbackRepository.Fetch(ctx, typeFilter, nameFilter, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.feedbackRepository.Count(ctx, typeFilter, nameFilter)
	if err != nil {
		return nil, 0, err
	}
	return feedback, total, nil
}
