package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
)

type artistUsecase struct {
	artistRepository domain.ArtistRepository
	audioRepository  domain.AudioRepository
	contextTimeout   time.Duration
}

func NewArtistUsecase(
	artistRepository domain.ArtistRepository,
	audioRepository domain.AudioRepository,
	timeout time.Duration,
) domain.ArtistUsecase {
	return &artistUsecase{
		artistRepository: artistRepository,
		audioRepository:  audioRepository,
		contextTimeout:   timeout,
	}
}

func (uc *artistUsecase) List(ctx context.Context, nameFilter string, page, limit int64) ([]domain.Artist, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	artists, err := uc.artistRepository.Fetch(ctx, nameFilter, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.artistRepository.Count(ctx, nameFilter)
	if err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

func (uc *artistUsecase) Create(ctx context.Context, input domain.ArtistInput) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if input.Name == "" {
		return nil, fmt.Errorf("%w: artist name is required", domain.ErrValidation)
	}
	if input.Image == nil {
		return nil, fmt.Errorf("%w: artist image is required", domain.ErrValidation)
	}

	artist := &domain.Artist{
		Name:   input.Name,
		Bio:    input.Bio,
		Image:  *input.Image,
		Audios: []primitive.ObjectID{},
	}
	if err := uc.artistRepository.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (uc *artistUsecase) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	artist, err := uc.artistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrNotFound
	}
	return artist, nil
}

func (uc *artistUsecase) Update(ctx context.Context, id primitive.ObjectID, input domain.ArtistInput) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	artist, err := uc.artistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrNotFound
	}

	if input.Name != "" {
		artist.Name = input.Name
	}
	if input.Bio != "" {
		artist.Bio = input.Bio
	}
	if input.Image != nil {
		artist.Image = *input.Image
	}

	update := bson.M{"$set": bson.M{
		"name":  artist.Name,
		"bio":   artist.Bio,
		"image": artist.Image,
	}}
	matched, err := uc.artistRepository.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return artist, nil
}

// Delete refuses while any audio still references the artist: audios belong to
// the catalog tree, so the artist is never a cascade root.
func (uc *artistUsecase) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	artist, err := uc.artistRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if artist == nil {
		return domain.ErrNotFound
	}
	if len(artist.Audios) > 0 {
		return fmt.Errorf("%w: artist %s has %d audios", domain.ErrStillReferenced, id.Hex(), len(artist.Audios))
	}

	return uc.artistRepository.DeleteByID(ctx, id)
}

func (uc *artistUsecase) Songs(ctx context.Context, artistID primitive.ObjectID, page, limit int64) ([]domain.Audio, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	songs, err := uc.audioRepository.FetchByArtist(ctx, artistID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.audioRepository.CountByArtist(ctx, artistID)
	if err != nil {
		return nil, 0, err
	}
	return songs, total, nil
}
