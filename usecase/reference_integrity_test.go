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

func newRefsForTest() (*ReferenceIntegrity, *mocks.CategoryRepository, *mocks.SubCategoryRepository, *mocks.ArtistRepository, *mocks.AudioRepository) {
	categories := new(mocks.CategoryRepository)
	subCategories := new(mocks.SubCategoryRepository)
	artists := new(mocks.ArtistRepository)
	audios := new(mocks.AudioRepository)
	return NewReferenceIntegrity(categories, subCategories, artists, audios), categories, subCategories, artists, audios
}

func TestAttachAppendsChildAndSetsBackReference(t *testing.T) {
	refs, categories, subCategories, _, _ := newRefsForTest()

	categoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()

	categories.On("GetByID", mock.Anything, categoryID).
		Return(&domain.Category{ID: categoryID, Subcategories: []primitive.ObjectID{}}, nil).Once()
	categories.On("UpdateByID", mock.Anything, categoryID,
		bson.M{"$set": bson.M{"subcategories": []primitive.ObjectID{subID}}}).
		Return(true, nil).Once()
	subCategories.On("UpdateByID", mock.Anything, subID,
		bson.M{"$set": bson.M{"category": categoryID}}).
		Return(true, nil).Once()

	err := refs.Attach(context.Background(), categoryID, subID, domain.RelationCategorySubcategories)
	require.NoError(t, err)

	categories.AssertExpectations(t)
	subCategories.AssertExpectations(t)
}

func TestAttachAlreadyAttachedIsIdempotent(t *testing.T) {
	refs, categories, subCategories, _, _ := newRefsForTest()

	categoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()

	categories.On("GetByID", mock.Anything, categoryID).
		Return(&domain.Category{ID: categoryID, Subcategories: []primitive.ObjectID{subID}}, nil).Once()
	subCategories.On("UpdateByID", mock.Anything, subID,
		bson.M{"$set": bson.M{"category": categoryID}}).
		Return(true, nil).Once()

	err := refs.Attach(context.Background(), categoryID, subID, domain.RelationCategorySubcategories)
	require.NoError(t, err)

	// The parent array was not rewritten.
	categories.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachMissingParent(t *testing.T) {
	refs, categories, _, _, _ := newRefsForTest()

	categoryID := primitive.NewObjectID()
	categories.On("GetByID", mock.Anything, categoryID).Return(nil, nil).Once()

	err := refs.Attach(context.Background(), categoryID, primitive.NewObjectID(), domain.RelationCategorySubcategories)
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestDetachRemovesOnlyFirstOccurrence(t *testing.T) {
	refs, _, subCategories, _, audios := newRefsForTest()

	subID := primitive.NewObjectID()
	audioID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	subCategories.On("GetByID", mock.Anything, subID).
		Return(&domain.SubCategory{ID: subID, Audios: []primitive.ObjectID{otherID, audioID}}, nil).Once()
	subCategories.On("UpdateByID", mock.Anything, subID,
		bson.M{"$set": bson.M{"audios": []primitive.ObjectID{otherID}}}).
		Return(true, nil).Once()

	err := refs.Detach(context.Background(), subID, audioID, domain.RelationSubCategoryAudios)
	require.NoError(t, err)

	subCategories.AssertExpectations(t)
	audios.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDetachAbsentChildIsNoOp(t *testing.T) {
	refs, _, subCategories, _, _ := newRefsForTest()

	subID := primitive.NewObjectID()
	subCategories.On("GetByID", mock.Anything, subID).
		Return(&domain.SubCategory{ID: subID, Audios: []primitive.ObjectID{primitive.NewObjectID()}}, nil).Once()

	err := refs.Detach(context.Background(), subID, primitive.NewObjectID(), domain.RelationSubCategoryAudios)
	require.NoError(t, err)

	subCategories.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDetachMissingParentIsNoOp(t *testing.T) {
	refs, _, _, artists, _ := newRefsForTest()

	artistID := primitive.NewObjectID()
	artists.On("GetByID", mock.Anything, artistID).Return(nil, nil).Once()

	err := refs.Detach(context.Background(), artistID, primitive.NewObjectID(), domain.RelationArtistAudios)
	require.NoError(t, err)
}

func TestMoveSameParentIsNoOp(t *testing.T) {
	refs, categories, _, _, _ := newRefsForTest()

	parentID := primitive.NewObjectID()
	err := refs.Move(context.Background(), primitive.NewObjectID(), parentID, parentID, domain.RelationCategorySubcategories)
	require.NoError(t, err)

	categories.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMoveDetachesThenAttaches(t *testing.T) {
	refs, categories, subCategories, _, _ := newRefsForTest()

	oldID := primitive.NewObjectID()
	newID := primitive.NewObjectID()
	subID := primitive.NewObjectID()

	categories.On("GetByID", mock.Anything, oldID).
		Return(&domain.Category{ID: oldID, Subcategories: []primitive.ObjectID{subID}}, nil).Once()
	categories.On("UpdateByID", mock.Anything, oldID,
		bson.M{"$set": bson.M{"subcategories": []primitive.ObjectID{}}}).
		Return(true, nil).Once()

	categories.On("GetByID", mock.Anything, newID).
		Return(&domain.Category{ID: newID, Subcategories: []primitive.ObjectID{}}, nil).Once()
	categories.On("UpdateByID", mock.Anything, newID,
		bson.M{"$set": bson.M{"subcategories": []primitive.ObjectID{subID}}}).
		Return(true, nil).Once()
	subCategories.On("UpdateByID", mock.Anything, subID,
		bson.M{"$set": bson.M{"category": newID}}).
		Return(true, nil).Once()

	err := refs.Move(context.Background(), subID, oldID, newID, domain.RelationCategorySubcategories)
	require.NoError(t, err)

	categories.AssertExpectations(t)
	subCategories.AssertExpectations(t)
}

func TestMoveRoundTripRestoresMembership(t *testing.T) {
	refs, _, _, artists, audios := newRefsForTest()

	artistA := primitive.NewObjectID()
	artistB := primitive.NewObjectID()
	audioID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	// A → B.
	artists.On("GetByID", mock.Anything, artistA).
		Return(&domain.Artist{ID: artistA, Audios: []primitive.ObjectID{otherID, audioID}}, nil).Once()
	artists.On("UpdateByID", mock.Anything, artistA,
		bson.M{"$set": bson.M{"audios": []primitive.ObjectID{otherID}}}).
		Return(true, nil).Once()
	artists.On("GetByID", mock.Anything, artistB).
		Return(&domain.Artist{ID: artistB, Audios: []primitive.ObjectID{}}, nil).Once()
	artists.On("UpdateByID", mock.Anything, artistB,
		bson.M{"$set": bson.M{"audios": []primitive.ObjectID{audioID}}}).
		Return(true, nil).Once()
	audios.On("UpdateByID", mock.Anything, audioID,
		bson.M{"$set": bson.M{"artist": artistB}}).
		Return(true, nil).Once()

	// B → A restores the original membership of both artists exactly.
	artists.On("GetByID", mock.Anything, artistB).
		Return(&domain.Artist{ID: artistB, Audios: []primitive.ObjectID{audioID}}, nil).Once()
	artists.On("UpdateByID", mock.Anything, artistB,
		bson.M{"$set": bson.M{"audios": []primitive.ObjectID{}}}).
		Return(true, nil).Once()
	artists.On("GetByID", mock.Anything, artistA).
		Return(&domain.Artist{ID: artistA, Audios: []primitive.ObjectID{otherID}}, nil).Once()
	artists.On("UpdateByID", mock.Anything, artistA,
		bson.M{"$set": bson.M{"audios": []primitive.ObjectID{otherID, audioID}}}).
		Return(true, nil).Once()
	audios.On("UpdateByID", mock.Anything, audioID,
		bson.M{"$set": bson.M{"artist": artistA}}).
		Return(true, nil).Once()

	err := refs.Move(context.Background(), audioID, artistA, artistB, domain.RelationArtistAudios)
	require.NoError(t, err)
	err = refs.Move(context.Background(), audioID, artistB, artistA, domain.RelationArtistAudios)
	require.NoError(t, err)

	artists.AssertExpectations(t)
	audios.AssertExpectations(t)
}

func TestAttachStoreFailureSurfaces(t *testing.T) {
	refs, categories, _, _, _ := newRefsForTest()

	categoryID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	storeErr := errors.New("write failed")

	categories.On("GetByID", mock.Anything, categoryID).
		Return(&domain.Category{ID: categoryID}, nil).Once()
	categories.On("UpdateByID", mock.Anything, categoryID, mock.Anything).
		Return(false, storeErr).Once()

	err := refs.Attach(context.Background(), categoryID, subID, domain.RelationCategorySubcategories)
	assert.ErrorIs(t, err, storeErr)
}
