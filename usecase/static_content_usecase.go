package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/soundvault/soundvault-backend/domain"
)

type staticContentUsecase struct {
	repository     domain.StaticContentRepository
	contextTimeout time.Duration
}

func NewStaticContentUsecase(repository domain.StaticContentRepository, timeout time.Duration) domain.StaticContentUsecase {
	return &staticContentUsecase{
		repository:     repository,
		contextTimeout: timeout,
	}
}

func (uc *staticContentUsecase) Get(ctx context.Context) (*domain.StaticContent, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	return uc.repository.Get(ctx)
}

func (uc *staticContentUsecase) Put(ctx context.Context, content string) (*domain.StaticContent, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	return uc.repository.Upsert(ctx, content)
}

func (uc *staticContentUsecase) Delete(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	return uc.repository.DeleteAll(ctx)
}
