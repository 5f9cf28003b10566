package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/domain/mocks"
)

func newTestMigrator(t *testing.T) (*Migrator, string, *mocks.CategoryRepository, *mocks.SubCategoryRepository, *mocks.AudioRepository) {
	t.Helper()
	root := t.TempDir()
	categories := new(mocks.CategoryRepository)
	subCategories := new(mocks.SubCategoryRepository)
	audios := new(mocks.AudioRepository)
	m := NewMigrator(categories, subCategories, audios, root, io.Discard)
	return m, root, categories, subCategories, audios
}

func placeFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	p := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
}

func TestMigratorRewritesLegacyPath(t *testing.T) {
	m, root, categories, subCategories, audios := newTestMigrator(t)

	placeFile(t, root, "category", "image", "a.png")
	cat := domain.Category{
		ID:    primitive.NewObjectID(),
		Name:  "Rock",
		Image: domain.Asset{File: "/uploads/category/image/a.png"},
	}

	categories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return([]domain.Category{cat}, nil).Once()
	categories.On("UpdateByID", mock.Anything, cat.ID,
		bson.M{"$set": bson.M{"image.file": "uploads/category/image/a.png"}}).
		Return(true, nil).Once()
	subCategories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return(nil, nil).Once()
	audios.On("Fetch", mock.Anything, "").Return(nil, nil).Once()

	summary, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Fixed)
	assert.Equal(t, 0, summary.NotFound)
	categories.AssertExpectations(t)
}

func TestMigratorFlagsMissingFile(t *testing.T) {
	m, _, categories, subCategories, audios := newTestMigrator(t)

	cat := domain.Category{
		ID:    primitive.NewObjectID(),
		Name:  "Jazz",
		Image: domain.Asset{File: "images/lost.png"},
	}

	categories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return([]domain.Category{cat}, nil).Once()
	subCategories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return(nil, nil).Once()
	audios.On("Fetch", mock.Anything, "").Return(nil, nil).Once()

	summary, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Fixed)
	assert.Equal(t, 1, summary.NotFound)
	categories.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestMigratorSecondRunIsNoOp(t *testing.T) {
	m, _, categories, subCategories, audios := newTestMigrator(t)

	cat := domain.Category{
		ID:    primitive.NewObjectID(),
		Name:  "Pop",
		Image: domain.Asset{File: "uploads/category/image/b.png"},
	}

	categories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return([]domain.Category{cat}, nil).Once()
	subCategories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return(nil, nil).Once()
	audios.On("Fetch", mock.Anything, "").Return(nil, nil).Once()

	summary, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Fixed)
	assert.Equal(t, 1, summary.Skipped)
	categories.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestMigratorRewritesAudioAssets(t *testing.T) {
	m, root, categories, subCategories, audios := newTestMigrator(t)

	placeFile(t, root, "audio", "audioFile", "track.mp3")
	audio := domain.Audio{
		ID:        primitive.NewObjectID(),
		Title:     "Track",
		AudioFile: &domain.Asset{File: "/media/old/track.mp3"},
	}

	categories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return(nil, nil).Once()
	subCategories.On("Fetch", mock.Anything, "", int64(0), int64(0)).
		Return(nil, nil).Once()
	audios.On("Fetch", mock.Anything, "").Return([]domain.Audio{audio}, nil).Once()
	audios.On("UpdateByID", mock.Anything, audio.ID,
		bson.M{"$set": bson.M{"audio.file": "uploads/audio/audioFile/track.mp3"}}).
		Return(true, nil).Once()

	summary, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Fixed)
	audios.AssertExpectations(t)
}

func TestCanonicalPathUsesBaseName(t *testing.T) {
	assert.Equal(t, "uploads/audio/audioFile/track.mp3",
		CanonicalPath(RoleAudioFile, `C:\legacy\media\track.mp3`))
	assert.Equal(t, "uploads/category/image/a.png",
		CanonicalPath(RoleCategoryImage, "/uploads/category/image/a.png"))
}
