package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/soundvault/soundvault-backend/domain"
)

// IsCanonical reports whether a stored asset path already begins with the
// canonical upload root.
func IsCanonical(stored string) bool {
	return strings.HasPrefix(stored, PublicRoot+"/")
}

// CanonicalPath recomputes the canonical stored path for a legacy reference
// from its role and stored filename. Legacy data contains Windows-style
// separators, so both kinds are treated as path boundaries.
func CanonicalPath(role Role, stored string) string {
	dir := roleDirs[role]
	stored = strings.ReplaceAll(stored, `\`, "/")
	return path.Join(PublicRoot, dir, path.Base(stored))
}

// Migrator is the operator-invoked batch that corrects legacy asset paths in
// place. It only rewrites metadata: the persisted path is updated when, and
// only when, the file already exists at the canonical location. Bytes on disk
// are never moved or deleted, and a second run over a migrated dataset is a
// no-op.
type Migrator struct {
	categories    domain.CategoryRepository
	subCategories domain.SubCategoryRepository
	audios        domain.AudioRepository

	// uploadRoot is where the upload tree lives on disk.
	uploadRoot string
	out        io.Writer
}

type MigrationSummary struct {
	Fixed    int
	NotFound int
	Skipped  int
}

func NewMigrator(
	categories domain.CategoryRepository,
	subCategories domain.SubCategoryRepository,
	audios domain.AudioRepository,
	uploadRoot string,
	out io.Writer,
) *Migrator {
	if uploadRoot == "" {
		uploadRoot = PublicRoot
	}
	return &Migrator{
		categories:    categories,
		subCategories: subCategories,
		audios:        audios,
		uploadRoot:    uploadRoot,
		out:           out,
	}
}

func (m *Migrator) Run(ctx context.Context) (MigrationSummary, error) {
	var summary MigrationSummary

	categories, err := m.categories.Fetch(ctx, "", 0, 0)
	if err != nil {
		return summary, fmt.Errorf("fetch categories: %w", err)
	}
	for _, c := range categories {
		m.fixAsset(ctx, &summary, "category", c.Name, RoleCategoryImage, c.Image.File,
			func(update bson.M) error {
				_, err := m.categories.UpdateByID(ctx, c.ID, update)
				return err
			}, "image")
	}

	subCategories, err := m.subCategories.Fetch(ctx, "", 0, 0)
	if err != nil {
		return summary, fmt.Errorf("fetch subcategories: %w", err)
	}
	for _, s := range subCategories {
		m.fixAsset(ctx, &summary, "subcategory", s.Name, RoleSubCategoryImage, s.Image.File,
			func(update bson.M) error {
				_, err := m.subCategories.UpdateByID(ctx, s.ID, update)
				return err
			}, "image")
	}

	audios, err := m.audios.Fetch(ctx, "")
	if err != nil {
		return summary, fmt.Errorf("fetch audios: %w", err)
	}
	for _, a := range audios {
		update := func(u bson.M) error {
			_, err := m.audios.UpdateByID(ctx, a.ID, u)
			return err
		}
		if a.AudioFile != nil {
			m.fixAsset(ctx, &summary, "audio", a.Title, RoleAudioFile, a.AudioFile.File, update, "audio")
		}
		if a.Image != nil {
			m.fixAsset(ctx, &summary, "audio", a.Title, RoleAudioImage, a.Image.File, update, "image")
		}
		if a.Lyrics != nil {
			m.fixAsset(ctx, &summary, "audio", a.Title, RoleAudioLyrics, a.Lyrics.File, update, "lyrics")
		}
	}

	return summary, nil
}

func (m *Migrator) fixAsset(
	_ context.Context,
	summary *MigrationSummary,
	kind, name string,
	role Role,
	stored string,
	update func(bson.M) error,
	field string,
) {
	if stored == "" || IsCanonical(stored) {
		summary.Skipped++
		fmt.Fprintf(m.out, "skipped: %s %q %s\n", kind, name, stored)
		return
	}

	newPath := CanonicalPath(role, stored)
	if _, err := os.Stat(DiskPath(m.uploadRoot, newPath)); err != nil {
		summary.NotFound++
		fmt.Fprintf(m.out, "not found: %s %q %s\n", kind, name, newPath)
		return
	}

	if err := update(bson.M{"$set": bson.M{field + ".file": newPath}}); err != nil {
		summary.Skipped++
		fmt.Fprintf(m.out, "skipped: %s %q update failed: %v\n", kind, name, err)
		return
	}

	summary.Fixed++
	fmt.Fprintf(m.out, "fixed: %s %q %s -> %s\n", kind, name, stored, newPath)
}
