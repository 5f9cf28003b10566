package usecase

import (
	"context"
	"runtime"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/logger"
)

// CascadeDelete removes a Category or SubCategory together with every entity
// that exists only as its descendant. Descendants of the same phase are
// deleted through a bounded worker pool; the phases themselves (leaves →
// intermediates → root) run in order because later phases assume the earlier
// ones completed. Per-item failures are collected rather than aborting the
// cascade: the result is completed-with-warnings, never a rollback.
type CascadeDelete struct {
	categories    domain.CategoryRepository
	subCategories domain.SubCategoryRepository
	audios        domain.AudioRepository
	refs          *ReferenceIntegrity
	workers       int
	log           *zap.Logger
}

func NewCascadeDelete(
	categories domain.CategoryRepository,
	subCategories domain.SubCategoryRepository,
	audios domain.AudioRepository,
	refs *ReferenceIntegrity,
) *CascadeDelete {
	workers := runtime.NumCPU() * 2
	if workers < 4 {
		workers = 4
	}
	return &CascadeDelete{
		categories:    categories,
		subCategories: subCategories,
		audios:        audios,
		refs:          refs,
		workers:       workers,
		log:           logger.L(),
	}
}

// DeleteCategory removes the category, every subcategory it lists, and every
// audio those subcategories list. The category record itself is deleted even
// when some descendants failed; the failed ids are reported so cleanup can be
// retried for just those.
func (o *CascadeDelete) DeleteCategory(ctx context.Context, id primitive.ObjectID) (*domain.CascadeResult, error) {
	category, err := o.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	result := &domain.CascadeResult{}
	collector := newFailureCollector()

	subCategories := make([]*domain.SubCategory, 0, len(category.Subcategories))
	audioIDs := make([]primitive.ObjectID, 0)
	for _, subID := range category.Subcategories {
		subCategory, err := o.subCategories.GetByID(ctx, subID)
		if err != nil {
			o.log.Warn("cascade: load subcategory failed",
				zap.String("subcategory_id", subID.Hex()), zap.Error(err))
			collector.add(subID)
			continue
		}
		if subCategory == nil {
			continue
		}
		subCategories = append(subCategories, subCategory)
		audioIDs = append(audioIDs, subCategory.Audios...)
	}

	o.forEach(audioIDs, func(audioID primitive.ObjectID) {
		if err := o.deleteAudioLeaf(ctx, audioID); err != nil {
			o.log.Warn("cascade: delete audio failed",
				zap.String("audio_id", audioID.Hex()), zap.Error(err))
			collector.add(audioID)
			return
		}
		collector.countAudio()
	})

	o.forEach(idsOf(subCategories), func(subID primitive.ObjectID) {
		if err := o.subCategories.DeleteByID(ctx, subID); err != nil && err != domain.ErrNotFound {
			o.log.Warn("cascade: delete subcategory failed",
				zap.String("subcategory_id", subID.Hex()), zap.Error(err))
			collector.add(subID)
			return
		}
		collector.countSubCategory()
	})

	if err := o.categories.DeleteByID(ctx, id); err != nil && err != domain.ErrNotFound {
		return nil, err
	}

	collector.fill(result)
	return result, nil
}

// DeleteSubCategory removes the subcategory and every audio it lists, then
// detaches the subcategory from its parent category's array. The upward
// detach only happens here: when a subcategory dies as part of its own
// category's cascade the parent is going away too.
func (o *CascadeDelete) DeleteSubCategory(ctx context.Context, id primitive.ObjectID) (*domain.CascadeResult, error) {
	subCategory, err := o.subCategories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subCategory == nil {
		return nil, domain.ErrNotFound
	}

	result := &domain.CascadeResult{}
	collector := newFailureCollector()

	o.forEach(subCategory.Audios, func(audioID primitive.ObjectID) {
		if err := o.deleteAudioLeaf(ctx, audioID); err != nil {
			o.log.Warn("cascade: delete audio failed",
				zap.String("audio_id", audioID.Hex()), zap.Error(err))
			collector.add(audioID)
			return
		}
		collector.countAudio()
	})

	if err := o.subCategories.DeleteByID(ctx, id); err != nil && err != domain.ErrNotFound {
		return nil, err
	}
	collector.countSubCategory()

	if err := o.refs.Detach(ctx, subCategory.CategoryID, id, domain.RelationCategorySubcategories); err != nil {
		o.log.Warn("cascade: upward detach failed",
			zap.String("category_id", subCategory.CategoryID.Hex()), zap.Error(err))
	}

	collector.fill(result)
	return result, nil
}

// deleteAudioLeaf removes one audio and cleans up its artist back-reference.
// The artist itself is untouched by the cascade. An audio that is already
// gone counts as deleted.
func (o *CascadeDelete) deleteAudioLeaf(ctx context.Context, id primitive.ObjectID) error {
	audio, err := o.audios.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if audio == nil {
		return nil
	}

	if !audio.ArtistID.IsZero() {
		if err := o.refs.Detach(ctx, audio.ArtistID, id, domain.RelationArtistAudios); err != nil {
			o.log.Warn("cascade: artist detach failed",
				zap.String("artist_id", audio.ArtistID.Hex()), zap.Error(err))
		}
	}

	if err := o.audios.DeleteByID(ctx, id); err != nil && err != domain.ErrNotFound {
		return err
	}
	return nil
}

func (o *CascadeDelete) forEach(ids []primitive.ObjectID, fn func(primitive.ObjectID)) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, o.workers)
	for _, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(id primitive.ObjectID) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(id)
		}(id)
	}
	wg.Wait()
}

func idsOf(subCategories []*domain.SubCategory) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(subCategories))
	for _, s := range subCategories {
		ids = append(ids, s.ID)
	}
	return ids
}

// failureCollector gathers per-item outcomes from concurrent workers.
type failureCollector struct {
	mu            sync.Mutex
	failed        []string
	audios        int
	subCategories int
}

func newFailureCollector() *failureCollector {
	return &failureCollector{}
}

func (c *failureCollector) add(id primitive.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed = append(c.failed, id.Hex())
}

func (c *failureCollector) countAudio() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.audios++
}

func (c *failureCollector) countSubCategory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subCategories++
}

func (c *failureCollector) fill(result *domain.CascadeResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result.DeletedAudios = c.audios
	result.DeletedSubcategories = c.subCategories
	result.FailedIDs = c.failed
}
