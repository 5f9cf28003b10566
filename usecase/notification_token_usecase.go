package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
)

type notificationTokenUsecase struct {
	tokenRepository domain.NotificationTokenRepository
	contextTimeout  time.Duration
}

func NewNotificationTokenUsecase(tokenRepository domain.NotificationTokenRepository, timeout time.Duration) domain.NotificationTokenUsecase {
	return &notificationTokenUsecase{
		tokenRepository: tokenRepository,
		contextTimeout:  timeout,
	}
}

func (uc *notificationTokenUsecase) Store(ctx context.Context, token string) (*domain.NotificationToken, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if token == "" {
		return nil, false, fmt.Errorf("%w: token is required", domain.ErrValidation)
	}

	existing, err := uc.tokenRepository.GetByToken(ctx, token)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	record := &domain.NotificationToken{
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.tokenRepository.Create(ctx, record); err != nil {
		return nil, false, err
	}
	return record, true, nil
}

func (uc *notificationTokenUsecase) List(ctx context.Context) ([]domain.NotificationToken, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	return uc.tokenRepository.Fetch(ctx)
}

func (uc *notificationTokenUsecase) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	return uc.tokenRepository.DeleteByID(ctx, id)
}
