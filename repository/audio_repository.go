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

type audioRepository struct {
	db         mongo.Database
	collection string
}

func NewAudioRepository(db mongo.Database, collection string) domain.AudioRepository {
	return &audioRepository{
		db:         db,
		collection: collection,
	}
}

func (r *audioRepository) Create(ctx context.Context, audio *domain.Audio) error {
	coll := r.db.Collection(r.collection)

	if audio.ID.IsZero() {
		audio.ID = primitive.NewObjectID()
	}

	_, err := coll.InsertOne(ctx, audio)
	if err != nil {
		return fmt.Errorf("audio insert failed: %w", err)
	}
	return nil
}

// Fetch matches the title anywhere in the string, not just the prefix, for
// search-as-you-type behavior.
func (r *audioRepository) Fetch(ctx context.Context, titleFilter string) ([]domain.Audio, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if titleFilter != "" {
		filter["title"] = containsFilter(titleFilter)
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("audio fetch failed: %w", err)
	}

	audios := make([]domain.Audio, 0)
	if err := cursor.All(ctx, &audios); err != nil {
		return nil, fmt.Errorf("audio decode failed: %w", err)
	}
	return audios, nil
}

func (r *audioRepository) FetchByArtist(ctx context.Context, artistID primitive.ObjectID, skip, limit int64) ([]domain.Audio, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find()
	if limit > 0 {
		opts = opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, bson.M{"artist": artistID}, opts)
	if err != nil {
		return nil, fmt.Errorf("audio fetch by artist failed: %w", err)
	}

	audios := make([]domain.Audio, 0)
	if err := cursor.All(ctx, &audios); err != nil {
		return nil, fmt.Errorf("audio decode failed: %w", err)
	}
	return audios, nil
}

func (r *audioRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Audio, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{"_id": id})

	var audio domain.Audio
	if err := result.Decode(&audio); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audio by ID failed: %w", err)
	}
	return &audio, nil
}

func (r *audioRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	coll := r.db.Collection(r.collection)

	result, err := coll.UpdateByID(ctx, id, update)
	if err != nil {
		return false, fmt.Errorf("audio update failed: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *audioRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	count, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("audio delete failed: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *audioRepository) Count(ctx context.Context, titleFilter string) (int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if titleFilter != "" {
		filter["title"] = containsFilter(titleFilter)
	}
	return coll.CountDocuments(ctx, filter)
}

func (r *audioRepository) CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error) {
	coll := r.db.Collection(r.collection)
	return coll.CountDocuments(ctx, bson.M{"artist": artistID})
}
