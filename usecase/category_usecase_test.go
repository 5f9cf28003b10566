package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/domain/mocks"
)

func newCategoryUsecaseForTest() (domain.CategoryUsecase, *mocks.CategoryRepository) {
	categories := new(mocks.CategoryRepository)
	subCategories := new(mocks.SubCategoryRepository)
	artists := new(mocks.ArtistRepository)
	audios := new(mocks.AudioRepository)
	refs := NewReferenceIntegrity(categories, subCategories, artists, audios)
	cascade := NewCascadeDelete(categories, subCategories, audios, refs)
	return NewCategoryUsecase(categories, cascade, 2*time.Second), categories
}

func TestCategoryCreate(t *testing.T) {
	uc, categories := newCategoryUsecaseForTest()

	categories.On("Fetch", mock.Anything, "Rock", int64(0), int64(0)).
		Return(nil, nil).Once()
	categories.On("Create", mock.Anything, mock.AnythingOfType("*domain.Category")).
		Return(nil).Once()

	category, err := uc.Create(context.Background(), domain.CategoryInput{
		Name:  "Rock",
		Image: &domain.Asset{File: "uploads/category/image/1-rock.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Rock", category.Name)
	assert.NotNil(t, category.Subcategories)
	assert.Empty(t, category.Subcategories)
}

func TestCategoryCreateDuplicateNameCaseInsensitive(t *testing.T) {
	uc, categories := newCategoryUsecaseForTest()

	categories.On("Fetch", mock.Anything, "rock", int64(0), int64(0)).
		Return([]domain.Category{{ID: primitive.NewObjectID(), Name: "Rock"}}, nil).Once()

	_, err := uc.Create(context.Background(), domain.CategoryInput{
		Name:  "rock",
		Image: &domain.Asset{File: "uploads/category/image/1-rock.png"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryCreateRequiresNameAndImage(t *testing.T) {
	uc, _ := newCategoryUsecaseForTest()

	_, err := uc.Create(context.Background(), domain.CategoryInput{
		Image: &domain.Asset{File: "uploads/category/image/1-x.png"},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(context.Background(), domain.CategoryInput{Name: "Rock"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryUpdateKeepsOmittedFields(t *testing.T) {
	uc, categories := newCategoryUsecaseForTest()

	id := primitive.NewObjectID()
	existing := &domain.Category{
		ID:          id,
		Name:        "Rock",
		Description: "guitars",
		Image:       domain.Asset{File: "uploads/category/image/1-rock.png"},
	}

	categories.On("GetByID", mock.Anything, id).Return(existing, nil).Once()
	categories.On("UpdateByID", mock.Anything, id, bson.M{"$set": bson.M{
		"category_name": "Rock",
		"description":   "more guitars",
		"image":         existing.Image,
	}}).Return(true, nil).Once()

	category, err := uc.Update(context.Background(), id, domain.CategoryInput{
		Description: "more guitars",
	})
	require.NoError(t, err)

	assert.Equal(t, "Rock", category.Name)
	assert.Equal(t, "more guitars", category.Description)
	categories.AssertExpectations(t)
}

func TestCategoryUpdateRenameChecksUniqueness(t *testing.T) {
	uc, categories := newCategoryUsecaseForTest()

	id := primitive.NewObjectID()
	categories.On("GetByID", mock.Anything, id).
		Return(&domain.Category{ID: id, Name: "Rock"}, nil).Once()
	categories.On("Fetch", mock.Anything, "Jazz", int64(0), int64(0)).
		Return([]domain.Category{{ID: primitive.NewObjectID(), Name: "Jazz"}}, nil).Once()

	_, err := uc.Update(context.Background(), id, domain.CategoryInput{Name: "Jazz"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	uc, categories := newCategoryUsecaseForTest()

	id := primitive.NewObjectID()
	categories.On("GetByID", mock.Anything, id).Return(nil, nil).Once()

	_, err := uc.Update(context.Background(), id, domain.CategoryInput{Name: "Jazz"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
