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

type notificationTokenRepository struct {
	db         mongo.Database
	collection string
}

func NewNotificationTokenRepository(db mongo.Database, collection string) domain.NotificationTokenRepository {
	return &notificationTokenRepository{
		db:         db,
		collection: collection,
	}
}

func (r *notificationTokenRepository) Create(ctx context.Context, token *domain.NotificationToken) error {
	coll := r.db.Collection(r.collection)

	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}

	_, err := coll.InsertOne(ctx, token)
	if err != nil {
		return fmt.Errorf("notification token insert failed: %w", err)
	}
	return nil
}

func (r *notificationTokenRepository) GetByToken(ctx context.Context, token string) (*domain.NotificationToken, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{"token": token})

	var record domain.NotificationToken
	if err := result.Decode(&record); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification token failed: %w", err)
	}
	return &record, nil
}

func (r *notificationTokenRepository) Fetch(ctx context.Context) ([]domain.NotificationToken, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("notification token fetch failed: %w", err)
	}

	tokens := make([]domain.NotificationToken, 0)
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, fmt.Errorf("notification token decode failed: %w", err)
	}
	return tokens, nil
}

func (r *notificationTokenRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	count, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("notification token delete failed: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}
