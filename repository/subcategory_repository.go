package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
)

type subCategoryRepository struct {
	db         mongo.Database
	collection string
}

func NewSubCategoryRepository(db mongo.Database, collection string) domain.SubCategoryRepository {
	return &subCategoryRepository{
		db:         db,
		collection: collection,
	}
}

func (r *subCategoryRepository) Create(ctx context.Context, subCategory *domain.SubCategory) error {
	coll := r.db.Collection(r.collection)

	if subCategory.ID.IsZero() {
		subCategory.ID = primitive.NewObjectID()
	}
	if subCategory.Audios == nil {
		subCategory.Audios = []primitive.ObjectID{}
	}

	_, err := coll.InsertOne(ctx, subCategory)
	if err != nil {
		return fmt.Errorf("subcategory insert failed: %w", err)
	}
	return nil
}

func (r *subCategoryRepository) Fetch(ctx context.Context, nameFilter string, skip, limit int64) ([]domain.SubCategory, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if nameFilter != "" {
		filter["subcategory_name"] = containsFilter(nameFilter)
	}

	opts := options.Find()
	if limit > 0 {
		opts = opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("subcategory fetch failed: %w", err)
	}

	subCategories := make([]domain.SubCategory, 0)
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, fmt.Errorf("subcategory decode failed: %w", err)
	}
	return subCategories, nil
}

func (r *subCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SubCategory, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{"_id": id})

	var subCategory domain.SubCategory
	if err := result.Decode(&subCategory); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory by ID failed: %w", err)
	}
	return &subCategory, nil
}

func (r *subCategoryRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	coll := r.db.Collection(r.collection)

	result, err := coll.UpdateByID(ctx, id, update)
	if err != nil {
		return false, fmt.Errorf("subcategory update failed: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *subCategoryRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	count, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("subcategory delete failed: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *subCategoryRepository) Count(ctx context.Context, nameFilter string) (int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if nameFilter != "" {
		filter["subcategory_name"] = containsFilter(nameFilter)
	}
	return coll.CountDocuments(ctx, filter)
}
