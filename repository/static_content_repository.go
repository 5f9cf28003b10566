package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
)

type staticContentRepository struct {
	db         mongo.Database
	collection string
}

func NewStaticContentRepository(db mongo.Database, collection string) domain.StaticContentRepository {
	return &staticContentRepository{
		db:         db,
		collection: collection,
	}
}

func (r *staticContentRepository) Get(ctx context.Context) (*domain.StaticContent, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{})

	var content domain.StaticContent
	if err := result.Decode(&content); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get static content failed: %w", err)
	}
	return &content, nil
}

// Upsert replaces the single document of the collection, creating it on
// first write.
func (r *staticContentRepository) Upsert(ctx context.Context, content string) (*domain.StaticContent, error) {
	coll := r.db.Collection(r.collection)

	update := bson.M{"$set": bson.M{
		"content":      content,
		"last_updated": time.Now().UTC(),
	}}
	_, err := coll.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("static content upsert failed: %w", err)
	}
	return r.Get(ctx)
}

func (r *staticContentRepository) DeleteAll(ctx context.Context) error {
	coll := r.db.Collection(r.collection)

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("static content delete failed: %w", err)
	}
	return nil
}
