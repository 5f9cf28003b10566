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

type artistRepository struct {
	db         mongo.Database
	collection string
}

func NewArtistRepository(db mongo.Database, collection string) domain.ArtistRepository {
	return &artistRepository{
		db:         db,
		collection: collection,
	}
}

func (r *artistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	coll := r.db.Collection(r.collection)

	if artist.ID.IsZero() {
		artist.ID = primitive.NewObjectID()
	}
	if artist.Audios == nil {
		artist.Audios = []primitive.ObjectID{}
	}

	_, err := coll.InsertOne(ctx, artist)
	if err != nil {
		return fmt.Errorf("artist insert failed: %w", err)
	}
	return nil
}

func (r *artistRepository) Fetch(ctx context.Context, nameFilter string, skip, limit int64) ([]domain.Artist, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if nameFilter != "" {
		filter["name"] = containsFilter(nameFilter)
	}

	opts := options.Find()
	if limit > 0 {
		opts = opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("artist fetch failed: %w", err)
	}

	artists := make([]domain.Artist, 0)
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("artist decode failed: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{"_id": id})

	var artist domain.Artist
	if err := result.Decode(&artist); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artist by ID failed: %w", err)
	}
	return &artist, nil
}

func (r *artistRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	coll := r.db.Collection(r.collection)

	result, err := coll.UpdateByID(ctx, id, update)
	if err != nil {
		return false, fmt.Errorf("artist update failed: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *artistRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	count, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("artist delete failed: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *artistRepository) Count(ctx context.Context, nameFilter string) (int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if nameFilter != "" {
		filter["name"] = containsFilter(nameFilter)
	}
	return coll.CountDocuments(ctx, filter)
}
