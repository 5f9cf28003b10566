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

type categoryRepository struct {
	db         mongo.Database
	collection string
}

func NewCategoryRepository(db mongo.Database, collection string) domain.CategoryRepository {
	return &categoryRepository{
		db:         db,
		collection: collection,
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	coll := r.db.Collection(r.collection)

	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.Subcategories == nil {
		category.Subcategories = []primitive.ObjectID{}
	}

	_, err := coll.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("category insert failed: %w", err)
	}
	return nil
}

func (r *categoryRepository) Fetch(ctx context.Context, nameFilter string, skip, limit int64) ([]domain.Category, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if nameFilter != "" {
		filter["category_name"] = containsFilter(nameFilter)
	}

	opts := options.Find()
	if limit > 0 {
		opts = opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("category fetch failed: %w", err)
	}

	categories := make([]domain.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("category decode failed: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{"_id": id})

	var category domain.Category
	if err := result.Decode(&category); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by ID failed: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{"category_name": name})

	var category domain.Category
	if err := result.Decode(&category); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name failed: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	coll := r.db.Collection(r.collection)

	result, err := coll.UpdateByID(ctx, id, update)
	if err != nil {
		return false, fmt.Errorf("category update failed: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *categoryRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	count, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("category delete failed: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Count(ctx context.Context, nameFilter string) (int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if nameFilter != "" {
		filter["category_name"] = containsFilter(nameFilter)
	}
	return coll.CountDocuments(ctx, filter)
}
