package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/domain/mocks"
)

func newCascadeForTest() (*CascadeDelete, *mocks.CategoryRepository, *mocks.SubCategoryRepository, *mocks.ArtistRepository, *mocks.AudioRepository) {
	categories := new(mocks.CategoryRepository)
	subCategories := new(mocks.SubCategoryRepository)
	artists := new(mocks.ArtistRepository)
	audios := new(mocks.AudioRepository)
	refs := NewReferenceIntegrity(categories, subCategories, artists, audios)
	return NewCascadeDelete(categories, subCategories, audios, refs), categories, subCategories, artists, audios
}

func TestDeleteCategoryCascadesToLeaves(t *testing.T) {
	cascade, categories, subCategories, artists, audios := newCascadeForTest()

	categoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	artistID := primitive.NewObjectID()
	audio1 := primitive.NewObjectID()
	audio2 := primitive.NewObjectID()

	categories.On("GetByID", mock.Anything, categoryID).
		Return(&domain.Category{ID: categoryID, Subcategories: []primitive.ObjectID{subID}}, nil).Once()
	subCategories.On("GetByID", mock.Anything, subID).
		Return(&domain.SubCategory{ID: subID, CategoryID: categoryID, Audios: []primitive.ObjectID{audio1, audio2}}, nil).Once()

	audios.On("GetByID", mock.Anything, audio1).
		Return(&domain.Audio{ID: audio1, ArtistID: artistID}, nil).Once()
	audios.On("GetByID", mock.Anything, audio2).
		Return(&domain.Audio{ID: audio2}, nil).Once()

	// audio1 is detached from its artist before deletion.
	artists.On("GetByID", mock.Anything, artistID).
		Return(&domain.Artist{ID: artistID, Audios: []primitive.ObjectID{audio1}}, nil).Once()
	artists.On("UpdateByID", mock.Anything, artistID,
		bson.M{"$set": bson.M{"audios": []primitive.ObjectID{}}}).
		Return(true, nil).Once()

	audios.On("DeleteByID", mock.Anything, audio1).Return(nil).Once()
	audios.On("DeleteByID", mock.Anything, audio2).Return(nil).Once()
	subCategories.On("DeleteByID", mock.Anything, subID).Return(nil).Once()
	categories.On("DeleteByID", mock.Anything, categoryID).Return(nil).Once()

	result, err := cascade.DeleteCategory(context.Background(), categoryID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.DeletedAudios)
	assert.Equal(t, 1, result.DeletedSubcategories)
	assert.False(t, result.Partial())

	categories.AssertExpectations(t)
	subCategories.AssertExpectations(t)
	artists.AssertExpectations(t)
	audios.AssertExpectations(t)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	cascade, categories, _, _, _ := newCascadeForTest()

	categoryID := primitive.NewObjectID()
	categories.On("GetByID", mock.Anything, categoryID).Return(nil, nil).Once()

	_, err := cascade.DeleteCategory(context.Background(), categoryID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategoryPartialFailureStillDeletesRoot(t *testing.T) {
	cascade, categories, subCategories, _, audios := newCascadeForTest()

	categoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	audio1 := primitive.NewObjectID()
	audio2 := primitive.NewObjectID()

	categories.On("GetByID", mock.Anything, categoryID).
		Return(&domain.Category{ID: categoryID, Subcategories: []primitive.ObjectID{subID}}, nil).Once()
	subCategories.On("GetByID", mock.Anything, subID).
		Return(&domain.SubCategory{ID: subID, CategoryID: categoryID, Audios: []primitive.ObjectID{audio1, audio2}}, nil).Once()

	audios.On("GetByID", mock.Anything, audio1).
		Return(&domain.Audio{ID: audio1}, nil).Once()
	audios.On("GetByID", mock.Anything, audio2).
		Return(&domain.Audio{ID: audio2}, nil).Once()

	audios.On("DeleteByID", mock.Anything, audio1).Return(errors.New("store unavailable")).Once()
	audios.On("DeleteByID", mock.Anything, audio2).Return(nil).Once()
	subCategories.On("DeleteByID", mock.Anything, subID).Return(nil).Once()
	categories.On("DeleteByID", mock.Anything, categoryID).Return(nil).Once()

	result, err := cascade.DeleteCategory(context.Background(), categoryID)
	require.NoError(t, err)

	assert.True(t, result.Partial())
	assert.Equal(t, []string{audio1.Hex()}, result.FailedIDs)
	assert.Equal(t, 1, result.DeletedAudios)

	// The root record is gone even though a descendant failed.
	categories.AssertCalled(t, "DeleteByID", mock.Anything, categoryID)
}

func TestDeleteCategorySkipsDanglingSubcategoryIDs(t *testing.T) {
	cascade, categories, subCategories, _, _ := newCascadeForTest()

	categoryID := primitive.NewObjectID()
	ghostID := primitive.NewObjectID()

	categories.On("GetByID", mock.Anything, categoryID).
		Return(&domain.Category{ID: categoryID, Subcategories: []primitive.ObjectID{ghostID}}, nil).Once()
	subCategories.On("GetByID", mock.Anything, ghostID).Return(nil, nil).Once()
	categories.On("DeleteByID", mock.Anything, categoryID).Return(nil).Once()

	result, err := cascade.DeleteCategory(context.Background(), categoryID)
	require.NoError(t, err)

	assert.False(t, result.Partial())
	assert.Equal(t, 0, result.DeletedSubcategories)
	subCategories.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestDeleteSubCategoryDetachesFromParent(t *testing.T) {
	cascade, categories, subCategories, _, audios := newCascadeForTest()

	categoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	audioID := primitive.NewObjectID()

	subCategories.On("GetByID", mock.Anything, subID).
		Return(&domain.SubCategory{ID: subID, CategoryID: categoryID, Audios: []primitive.ObjectID{audioID}}, nil).Once()
	audios.On("GetByID", mock.Anything, audioID).
		Return(&domain.Audio{ID: audioID}, nil).Once()
	audios.On("DeleteByID", mock.Anything, audioID).Return(nil).Once()
	subCategories.On("DeleteByID", mock.Anything, subID).Return(nil).Once()

	// Upward detach rewrites the parent category's array.
	categories.On("GetByID", mock.Anything, categoryID).
		Return(&domain.Category{ID: categoryID, Subcategories: []primitive.ObjectID{subID}}, nil).Once()
	categories.On("UpdateByID", mock.Anything, categoryID,
		bson.M{"$set": bson.M{"subcategories": []primitive.ObjectID{}}}).
		Return(true, nil).Once()

	result, err := cascade.DeleteSubCategory(context.Background(), subID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.DeletedAudios)
	assert.Equal(t, 1, result.DeletedSubcategories)
	categories.AssertExpectations(t)
}

func TestDeleteSubCategoryAbsentAudioCountsAsDeleted(t *testing.T) {
	cascade, categories, subCategories, _, audios := newCascadeForTest()

	categoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	goneID := primitive.NewObjectID()

	subCategories.On("GetByID", mock.Anything, subID).
		Return(&domain.SubCategory{ID: subID, CategoryID: categoryID, Audios: []primitive.ObjectID{goneID}}, nil).Once()
	audios.On("GetByID", mock.Anything, goneID).Return(nil, nil).Once()
	subCategories.On("DeleteByID", mock.Anything, subID).Return(nil).Once()
	categories.On("GetByID", mock.Anything, categoryID).Return(nil, nil).Once()

	result, err := cascade.DeleteSubCategory(context.Background(), subID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.DeletedAudios)
	audios.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
