package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/domain/mocks"
)

func newSubCategoryUsecaseForTest() (domain.SubCategoryUsecase, *mocks.CategoryRepository, *mocks.SubCategoryRepository) {
	categories := new(mocks.CategoryRepository)
	subCategories := new(mocks.SubCategoryRepository)
	artists := new(mocks.ArtistRepository)
	audios := new(mocks.AudioRepository)
	refs := NewReferenceIntegrity(categories, subCategories, artists, audios)
	cascade := NewCascadeDelete(categories, subCategories, audios, refs)
	uc := NewSubCategoryUsecase(subCategories, categories, refs, cascade, 2*time.Second)
	return uc, categories, subCategories
}

func TestSubCategoryCreateMissingParentAborts(t *testing.T) {
	uc, categories, subCategories := newSubCategoryUsecaseForTest()

	categoryID := primitive.NewObjectID()
	categories.On("GetByID", mock.Anything, categoryID).Return(nil, nil).Once()

	_, err := uc.Create(context.Background(), domain.SubCategoryInput{
		Name:       "Blues",
		CategoryID: categoryID,
		Image:      &domain.Asset{File: "uploads/subcategory/image/1-blues.png"},
	})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)

	// Nothing was persisted before the parent check failed.
	subCategories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubCategoryCreateAttachesToParent(t *testing.T) {
	uc, categories, subCategories := newSubCategoryUsecaseForTest()

	categoryID := primitive.NewObjectID()
	parent := &domain.Category{ID: categoryID, Name: "Rock", Subcategories: []primitive.ObjectID{}}

	categories.On("GetByID", mock.Anything, categoryID).Return(parent, nil)
	subCategories.On("Create", mock.Anything, mock.AnythingOfType("*domain.SubCategory")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.SubCategory).ID = primitive.NewObjectID()
		}).
		Return(nil).Once()
	categories.On("UpdateByID", mock.Anything, categoryID, mock.Anything).Return(true, nil).Once()
	subCategories.On("UpdateByID", mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()

	subCategory, err := uc.Create(context.Background(), domain.SubCategoryInput{
		Name:       "Blues",
		CategoryID: categoryID,
		Image:      &domain.Asset{File: "uploads/subcategory/image/1-blues.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, categoryID, subCategory.CategoryID)
	assert.False(t, subCategory.ID.IsZero())
	categories.AssertExpectations(t)
	subCategories.AssertExpectations(t)
}

func TestSubCategoryUpdateMovesBetweenCategories(t *testing.T) {
	uc, categories, subCategories := newSubCategoryUsecaseForTest()

	oldCategoryID := primitive.NewObjectID()
	newCategoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()

	subCategories.On("GetByID", mock.Anything, subID).
		Return(&domain.SubCategory{ID: subID, Name: "Blues", CategoryID: oldCategoryID}, nil).Once()
	categories.On("GetByID", mock.Anything, newCategoryID).
		Return(&domain.Category{ID: newCategoryID, Subcategories: []primitive.ObjectID{}}, nil).Twice()
	categories.On("GetByID", mock.Anything, oldCategoryID).
		Return(&domain.Category{ID: oldCategoryID, Subcategories: []primitive.ObjectID{subID}}, nil).Once()
	categories.On("UpdateByID", mock.Anything, oldCategoryID, mock.Anything).Return(true, nil).Once()
	categories.On("UpdateByID", mock.Anything, newCategoryID, mock.Anything).Return(true, nil).Once()
	subCategories.On("UpdateByID", mock.Anything, subID, mock.Anything).Return(true, nil)

	subCategory, err := uc.Update(context.Background(), subID, domain.SubCategoryInput{
		CategoryID: newCategoryID,
	})
	require.NoError(t, err)

	assert.Equal(t, newCategoryID, subCategory.CategoryID)
	categories.AssertExpectations(t)
}
