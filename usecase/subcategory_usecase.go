package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
)

type subCategoryUsecase struct {
	subCategoryRepository domain.SubCategoryRepository
	categoryRepository    domain.CategoryRepository
	refs                  *ReferenceIntegrity
	cascade               *CascadeDelete
	contextTimeout        time.Duration
}

func NewSubCategoryUsecase(
	subCategoryRepository domain.SubCategoryRepository,
	categoryRepository domain.CategoryRepository,
	refs *ReferenceIntegrity,
	cascade *CascadeDelete,
	timeout time.Duration,
) domain.SubCategoryUsecase {
	return &subCategoryUsecase{
		subCategoryRepository: subCategoryRepository,
		categoryRepository:    categoryRepository,
		refs:                  refs,
		cascade:               cascade,
		contextTimeout:        timeout,
	}
}

func (uc *subCategoryUsecase) List(ctx context.Context, nameFilter string, page, limit int64) ([]domain.SubCategory, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	subCategories, err := uc.subCategoryRepository.Fetch(ctx, nameFilter, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.subCategoryRepository.Count(ctx, nameFilter)
	if err != nil {
		return nil, 0, err
	}
	return subCategories, total, nil
}

func (uc *subCategoryUsecase) Create(ctx context.Context, input domain.SubCategoryInput) (*domain.SubCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if input.Name == "" {
		return nil, fmt.Errorf("%w: subcategory name is required", domain.ErrValidation)
	}
	if input.Image == nil {
		return nil, fmt.Errorf("%w: subcategory image is required", domain.ErrValidation)
	}

	// The parent must exist before the child is persisted, otherwise a
	// failed attach would leave an orphan behind.
	parent, err := uc.categoryRepository.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrParentNotFound
	}

	subCategory := &domain.SubCategory{
		Name:        input.Name,
		Image:       *input.Image,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Audios:      []primitive.ObjectID{},
	}
	if err := uc.subCategoryRepository.Create(ctx, subCategory); err != nil {
		return nil, err
	}

	if err := uc.refs.Attach(ctx, input.CategoryID, subCategory.ID, domain.RelationCategorySubcategories); err != nil {
		return nil, err
	}
	return subCategory, nil
}

func (uc *subCategoryUsecase) Update(ctx context.Context, id primitive.ObjectID, input domain.SubCategoryInput) (*domain.SubCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	subCategory, err := uc.subCategoryRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subCategory == nil {
		return nil, domain.ErrNotFound
	}

	if !input.CategoryID.IsZero() && input.CategoryID != subCategory.CategoryID {
		parent, err := uc.categoryRepository.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrParentNotFound
		}
		if err := uc.refs.Move(ctx, id, subCategory.CategoryID, input.CategoryID, domain.RelationCategorySubcategories); err != nil {
			return nil, err
		}
		subCategory.CategoryID = input.CategoryID
	}

	if input.Name != "" {
		subCategory.Name = input.Name
	}
	if input.Description != "" {
		subCategory.Description = input.Description
	}
	if input.Image != nil {
		subCategory.Image = *input.Image
	}

	update := bson.M{"$set": bson.M{
		"subcategory_name": subCategory.Name,
		"description":      subCategory.Description,
		"image":            subCategory.Image,
		"category":         subCategory.CategoryID,
	}}
	matched, err := uc.subCategoryRepository.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return subCategory, nil
}

func (uc *subCategoryUsecase) Delete(ctx context.Context, id primitive.ObjectID) (*domain.CascadeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	return uc.cascade.DeleteSubCategory(ctx, id)
}
