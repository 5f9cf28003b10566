package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"

	"github.com/soundvault/soundvault-backend/domain"
)

// foldCaser normalizes names for case-insensitive uniqueness checks.
var foldCaser = cases.Fold()

func foldedEqual(a, b string) bool {
	return foldCaser.String(a) == foldCaser.String(b)
}

type categoryUsecase struct {
	categoryRepository domain.CategoryRepository
	cascade            *CascadeDelete
	contextTimeout     time.Duration
}

func NewCategoryUsecase(
	categoryRepository domain.CategoryRepository,
	cascade *CascadeDelete,
	timeout time.Duration,
) domain.CategoryUsecase {
	return &categoryUsecase{
		categoryRepository: categoryRepository,
		cascade:            cascade,
		contextTimeout:     timeout,
	}
}

func (uc *categoryUsecase) List(ctx context.Context, nameFilter string, page, limit int64) ([]domain.Category, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	categories, err := uc.categoryRepository.Fetch(ctx, nameFilter, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.categoryRepository.Count(ctx, nameFilter)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (uc *categoryUsecase) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if input.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	if input.Image == nil {
		return nil, fmt.Errorf("%w: category image is required", domain.ErrValidation)
	}

	existing, err := uc.existingWithName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}

	category := &domain.Category{
		Name:          input.Name,
		Image:         *input.Image,
		Description:   input.Description,
		Subcategories: []primitive.ObjectID{},
	}
	if err := uc.categoryRepository.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *categoryUsecase) Update(ctx context.Context, id primitive.ObjectID, input domain.CategoryInput) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	category, err := uc.categoryRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	// Fields not submitted keep their previous values.
	if input.Name != "" && !foldedEqual(input.Name, category.Name) {
		existing, err := uc.existingWithName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicateName
		}
		category.Name = input.Name
	}
	if input.Description != "" {
		category.Description = input.Description
	}
	if input.Image != nil {
		category.Image = *input.Image
	}

	update := bson.M{"$set": bson.M{
		"category_name": category.Name,
		"description":   category.Description,
		"image":         category.Image,
	}}
	matched, err := uc.categoryRepository.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (uc *categoryUsecase) Delete(ctx context.Context, id primitive.ObjectID) (*domain.CascadeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	return uc.cascade.DeleteCategory(ctx, id)
}

// existingWithName looks up a category by name, case-insensitively: the
// contains-search narrows candidates, fold-comparison decides.
func (uc *categoryUsecase) existingWithName(ctx context.Context, name string) (*domain.Category, error) {
	candidates, err := uc.categoryRepository.Fetch(ctx, name, 0, 0)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if foldedEqual(candidates[i].Name, name) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}
