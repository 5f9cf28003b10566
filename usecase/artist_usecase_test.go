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

func newArtistUsecaseForTest() (domain.ArtistUsecase, *mocks.ArtistRepository, *mocks.AudioRepository) {
	artists := new(mocks.ArtistRepository)
	audios := new(mocks.AudioRepository)
	return NewArtistUsecase(artists, audios, 2*time.Second), artists, audios
}

func TestArtistDeleteRefusedWhileReferenced(t *testing.T) {
	uc, artists, _ := newArtistUsecaseForTest()

	id := primitive.NewObjectID()
	artists.On("GetByID", mock.Anything, id).
		Return(&domain.Artist{ID: id, Audios: []primitive.ObjectID{primitive.NewObjectID()}}, nil).Once()

	err := uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrStillReferenced)
	artists.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestArtistDeleteWithoutAudios(t *testing.T) {
	uc, artists, _ := newArtistUsecaseForTest()

	id := primitive.NewObjectID()
	artists.On("GetByID", mock.Anything, id).
		Return(&domain.Artist{ID: id, Audios: []primitive.ObjectID{}}, nil).Once()
	artists.On("DeleteByID", mock.Anything, id).Return(nil).Once()

	require.NoError(t, uc.Delete(context.Background(), id))
	artists.AssertExpectations(t)
}

func TestArtistSongsPaginates(t *testing.T) {
	uc, _, audios := newArtistUsecaseForTest()

	artistID := primitive.NewObjectID()
	audios.On("FetchByArtist", mock.Anything, artistID, int64(10), int64(10)).
		Return([]domain.Audio{{Title: "Track"}}, nil).Once()
	audios.On("CountByArtist", mock.Anything, artistID).Return(int64(11), nil).Once()

	songs, total, err := uc.Songs(context.Background(), artistID, 2, 10)
	require.NoError(t, err)

	assert.Len(t, songs, 1)
	assert.Equal(t, int64(11), total)
}
