package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/storage"
	"github.com/soundvault/soundvault-backend/util/audiometa"
)

type audioUsecase struct {
	audioRepository       domain.AudioRepository
	subCategoryRepository domain.SubCategoryRepository
	artistRepository      domain.ArtistRepository
	refs                  *ReferenceIntegrity
	uploadRoot            string
	contextTimeout        time.Duration
}

func NewAudioUsecase(
	audioRepository domain.AudioRepository,
	subCategoryRepository domain.SubCategoryRepository,
	artistRepository domain.ArtistRepository,
	refs *ReferenceIntegrity,
	uploadRoot string,
	timeout time.Duration,
) domain.AudioUsecase {
	return &audioUsecase{
		audioRepository:       audioRepository,
		subCategoryRepository: subCategoryRepository,
		artistRepository:      artistRepository,
		refs:                  refs,
		uploadRoot:            uploadRoot,
		contextTimeout:        timeout,
	}
}

func (uc *audioUsecase) List(ctx context.Context, titleFilter string) ([]domain.Audio, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	audios, err := uc.audioRepository.Fetch(ctx, titleFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.audioRepository.Count(ctx, titleFilter)
	if err != nil {
		return nil, 0, err
	}
	return audios, total, nil
}

func (uc *audioUsecase) Create(ctx context.Context, input domain.AudioInput) (*domain.Audio, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	if input.ArtistID.IsZero() {
		return nil, fmt.Errorf("%w: artist id is required", domain.ErrValidation)
	}

	// Both parents must exist before the audio is persisted (no orphans).
	subCategory, err := uc.subCategoryRepository.GetByID(ctx, input.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if subCategory == nil {
		return nil, domain.ErrParentNotFound
	}
	artist, err := uc.artistRepository.GetByID(ctx, input.ArtistID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrParentNotFound
	}

	title := input.Title
	if title == "" && input.AudioFile != nil {
		title = audiometa.TitleFromTags(storage.DiskPath(uc.uploadRoot, input.AudioFile.File))
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	duration, formatted := uc.resolveDuration(input, nil)

	audio := &domain.Audio{
		Title:             title,
		AudioFile:         input.AudioFile,
		Image:             input.Image,
		Lyrics:            input.Lyrics,
		Duration:          duration,
		DurationFormatted: formatted,
		SubcategoryID:     input.SubcategoryID,
		ArtistID:          input.ArtistID,
	}
	if err := uc.audioRepository.Create(ctx, audio); err != nil {
		return nil, err
	}

	if err := uc.refs.Attach(ctx, input.SubcategoryID, audio.ID, domain.RelationSubCategoryAudios); err != nil {
		return nil, err
	}
	if err := uc.refs.Attach(ctx, input.ArtistID, audio.ID, domain.RelationArtistAudios); err != nil {
		return nil, err
	}
	return audio, nil
}

func (uc *audioUsecase) Update(ctx context.Context, id primitive.ObjectID, input domain.AudioInput) (*domain.Audio, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	audio, err := uc.audioRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if audio == nil {
		return nil, domain.ErrNotFound
	}

	if !input.SubcategoryID.IsZero() && input.SubcategoryID != audio.SubcategoryID {
		subCategory, err := uc.subCategoryRepository.GetByID(ctx, input.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if subCategory == nil {
			return nil, domain.ErrParentNotFound
		}
		if err := uc.refs.Move(ctx, id, audio.SubcategoryID, input.SubcategoryID, domain.RelationSubCategoryAudios); err != nil {
			return nil, err
		}
		audio.SubcategoryID = input.SubcategoryID
	}

	if !input.ArtistID.IsZero() && input.ArtistID != audio.ArtistID {
		artist, err := uc.artistRepository.GetByID(ctx, input.ArtistID)
		if err != nil {
			return nil, err
		}
		if artist == nil {
			return nil, domain.ErrParentNotFound
		}
		if err := uc.refs.Move(ctx, id, audio.ArtistID, input.ArtistID, domain.RelationArtistAudios); err != nil {
			return nil, err
		}
		audio.ArtistID = input.ArtistID
	}

	if input.Title != "" {
		audio.Title = input.Title
	}
	if input.AudioFile != nil {
		audio.AudioFile = input.AudioFile
	}
	if input.Image != nil {
		audio.Image = input.Image
	}
	if input.Lyrics != nil {
		audio.Lyrics = input.Lyrics
	}

	// A manual override beats re-extraction from a new file; without either,
	// the previous duration is retained unchanged.
	if input.Duration != nil || input.AudioFile != nil {
		audio.Duration, audio.DurationFormatted = uc.resolveDuration(input, audio)
	}

	update := bson.M{"$set": bson.M{
		"title":             audio.Title,
		"audio":             audio.AudioFile,
		"image":             audio.Image,
		"lyrics":            audio.Lyrics,
		"duration":          audio.Duration,
		"durationFormatted": audio.DurationFormatted,
		"subcategory":       audio.SubcategoryID,
		"artist":            audio.ArtistID,
	}}
	matched, err := uc.audioRepository.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return audio, nil
}

func (uc *audioUsecase) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	audio, err := uc.audioRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if audio == nil {
		return domain.ErrNotFound
	}

	if err := uc.refs.Detach(ctx, audio.SubcategoryID, id, domain.RelationSubCategoryAudios); err != nil {
		return err
	}
	if !audio.ArtistID.IsZero() {
		if err := uc.refs.Detach(ctx, audio.ArtistID, id, domain.RelationArtistAudios); err != nil {
			return err
		}
	}

	return uc.audioRepository.DeleteByID(ctx, id)
}

func (uc *audioUsecase) resolveDuration(input domain.AudioInput, previous *domain.Audio) (int, string) {
	if input.Duration != nil && *input.Duration >= 0 {
		return *input.Duration, audiometa.FormatDuration(*input.Duration)
	}
	if input.AudioFile != nil {
		return audiometa.ExtractDuration(storage.DiskPath(uc.uploadRoot, input.AudioFile.File))
	}
	if previous != nil {
		return previous.Duration, previous.DurationFormatted
	}
	return 0, audiometa.ZeroDuration
}
