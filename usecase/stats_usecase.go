package usecase

import (
	"context"
	"time"

	"github.com/soundvault/soundvault-backend/domain"
)

type statsUsecase struct {
	categoryRepository    domain.CategoryRepository
	subCategoryRepository domain.SubCategoryRepository
	audioRepository       domain.AudioRepository
	contextTimeout        time.Duration
}

func NewStatsUsecase(
	categoryRepository domain.CategoryRepository,
	subCategoryRepository domain.SubCategoryRepository,
	audioRepository domain.AudioRepository,
	timeout time.Duration,
) domain.StatsUsecase {
	return &statsUsecase{
		categoryRepository:    categoryRepository,
		subCategoryRepository: subCategoryRepository,
		audioRepository:       audioRepository,
		contextTimeout:        timeout,
	}
}

func (uc *statsUsecase) Totals(ctx context.Context) (domain.TotalCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	var totals domain.TotalCounts
	var err error

	if totals.Categories, err = uc.categoryRepository.Count(ctx, ""); err != nil {
		return totals, err
	}
	if totals.SubCategories, err = uc.subCategoryRepository.Count(ctx, ""); err != nil {
		return totals, err
	}
	if totals.Audios, err = uc.audioRepository.Count(ctx, ""); err != nil {
		return totals, err
	}
	return totals, nil
}
