package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
)

// ReferenceIntegrity is the only component allowed to mutate the denormalized
// parent→children id arrays. Each operation performs a read of the parent, an
// in-memory array edit and a write-back; this is deliberately best-effort
// (last writer wins per parent document), so a later switch to multi-document
// transactions only has to touch this type.
type ReferenceIntegrity struct {
	categories    domain.CategoryRepository
	subCategories domain.SubCategoryRepository
	artists       domain.ArtistRepository
	audios        domain.AudioRepository
}

func NewReferenceIntegrity(
	categories domain.CategoryRepository,
	subCategories domain.SubCategoryRepository,
	artists domain.ArtistRepository,
	audios domain.AudioRepository,
) *ReferenceIntegrity {
	return &ReferenceIntegrity{
		categories:    categories,
		subCategories: subCategories,
		artists:       artists,
		audios:        audios,
	}
}

type relationOps struct {
	loadParent     func(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, bool, error)
	storeParent    func(ctx context.Context, id primitive.ObjectID, ids []primitive.ObjectID) error
	setChildParent func(ctx context.Context, childID, parentID primitive.ObjectID) error
}

func (m *ReferenceIntegrity) ops(relation domain.Relation) (relationOps, error) {
	switch relation {
	case domain.RelationCategorySubcategories:
		return relationOps{
			loadParent: func(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, bool, error) {
				category, err := m.categories.GetByID(ctx, id)
				if err != nil || category == nil {
					return nil, false, err
				}
				return category.Subcategories, true, nil
			},
			storeParent: func(ctx context.Context, id primitive.ObjectID, ids []primitive.ObjectID) error {
				_, err := m.categories.UpdateByID(ctx, id, bson.M{"$set": bson.M{"subcategories": ids}})
				return err
			},
			setChildParent: func(ctx context.Context, childID, parentID primitive.ObjectID) error {
				_, err := m.subCategories.UpdateByID(ctx, childID, bson.M{"$set": bson.M{"category": parentID}})
				return err
			},
		}, nil
	case domain.RelationSubCategoryAudios:
		return relationOps{
			loadParent: func(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, bool, error) {
				subCategory, err := m.subCategories.GetByID(ctx, id)
				if err != nil || subCategory == nil {
					return nil, false, err
				}
				return subCategory.Audios, true, nil
			},
			storeParent: func(ctx context.Context, id primitive.ObjectID, ids []primitive.ObjectID) error {
				_, err := m.subCategories.UpdateByID(ctx, id, bson.M{"$set": bson.M{"audios": ids}})
				return err
			},
			setChildParent: func(ctx context.Context, childID, parentID primitive.ObjectID) error {
				_, err := m.audios.UpdateByID(ctx, childID, bson.M{"$set": bson.M{"subcategory": parentID}})
				return err
			},
		}, nil
	case domain.RelationArtistAudios:
		return relationOps{
			loadParent: func(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, bool, error) {
				artist, err := m.artists.GetByID(ctx, id)
				if err != nil || artist == nil {
					return nil, false, err
				}
				return artist.Audios, true, nil
			},
			storeParent: func(ctx context.Context, id primitive.ObjectID, ids []primitive.ObjectID) error {
				_, err := m.artists.UpdateByID(ctx, id, bson.M{"$set": bson.M{"audios": ids}})
				return err
			},
			setChildParent: func(ctx context.Context, childID, parentID primitive.ObjectID) error {
				_, err := m.audios.UpdateByID(ctx, childID, bson.M{"$set": bson.M{"artist": parentID}})
				return err
			},
		}, nil
	}
	return relationOps{}, fmt.Errorf("unknown relation %q", relation)
}

// Attach appends childID to the parent's array if not already present and
// points the child back at the parent. Attaching an already attached child is
// a no-op, so call sites never produce duplicate memberships.
func (m *ReferenceIntegrity) Attach(ctx context.Context, parentID, childID primitive.ObjectID, relation domain.Relation) error {
	ops, err := m.ops(relation)
	if err != nil {
		return err
	}

	ids, found, err := ops.loadParent(ctx, parentID)
	if err != nil {
		return fmt.Errorf("attach %s: %w", relation, err)
	}
	if !found {
		return fmt.Errorf("%w: %s parent %s", domain.ErrParentNotFound, relation, parentID.Hex())
	}

	if !containsID(ids, childID) {
		ids = append(ids, childID)
		if err := ops.storeParent(ctx, parentID, ids); err != nil {
			return fmt.Errorf("attach %s: %w", relation, err)
		}
	}

	if err := ops.setChildParent(ctx, childID, parentID); err != nil {
		return fmt.Errorf("attach %s: %w", relation, err)
	}
	return nil
}

// Detach removes the first occurrence of childID from the parent's array.
// A missing parent or an id that is not in the array is a no-op, not an
// error: deletion races and double-detach must not fail.
func (m *ReferenceIntegrity) Detach(ctx context.Context, parentID, childID primitive.ObjectID, relation domain.Relation) error {
	ops, err := m.ops(relation)
	if err != nil {
		return err
	}

	ids, found, err := ops.loadParent(ctx, parentID)
	if err != nil {
		return fmt.Errorf("detach %s: %w", relation, err)
	}
	if !found {
		return nil
	}

	idx := indexOfID(ids, childID)
	if idx < 0 {
		return nil
	}

	ids = append(ids[:idx:idx], ids[idx+1:]...)
	if err := ops.storeParent(ctx, parentID, ids); err != nil {
		return fmt.Errorf("detach %s: %w", relation, err)
	}
	return nil
}

// Move re-homes a child from oldParentID to newParentID. Moving within the
// same parent is a no-op.
func (m *ReferenceIntegrity) Move(ctx context.Context, childID, oldParentID, newParentID primitive.ObjectID, relation domain.Relation) error {
	if oldParentID == newParentID {
		return nil
	}
	if err := m.Detach(ctx, oldParentID, childID, relation); err != nil {
		return err
	}
	return m.Attach(ctx, newParentID, childID, relation)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	return indexOfID(ids, id) >= 0
}

func indexOfID(ids []primitive.ObjectID, id primitive.ObjectID) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
