package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
)

type feedbackRepository struct {
	db         mongo.Database
	collection string
}

func NewFeedbackRepository(db mongo.Database, collection string) domain.FeedbackRepository {
	return &feedbackRepository{
		db:         db,
		collection: collection,
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	coll := r.db.Collection(r.collection)

	if feedback.ID.IsZero() {
		feedback.ID = primitive.NewObjectID()
	}

	_, err := coll.InsertOne(ctx, feedback)
	if err != nil {
		return fmt.Errorf("feedback insert failed: %w", err)
	}
	return nil
}

func feedbackFilter(typeFilter, nameFilter string) bson.M {
	filter := bson.M{}
	if typeFilter != "" {
		filter["type"] = typeFilter
	}
	if nameFilter != "" {
		filter["name"] = containsFilter(nameFilter)
	}
	return filter
}

func (r *feedbackRepository) Fetch(ctx context.Context, typeFilter, nameFilter string, skip, limit int64) ([]domain.Feedback, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, feedbackFilter(typeFilter, nameFilter), opts)
	if err != nil {
		return nil, fmt.Errorf("feedback fetch failed: %w", err)
	}

	feedback := make([]domain.Feedback, 0)
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("feedback decode failed: %w", err)
	}
	return feedback, nil
}

func (r *feedbackRepository) Count(ctx context.Context, typeFilter, nameFilter string) (int64, error) {
	coll := r.db.Collection(r.collection)
	return coll.CountDocuments(ctx, feedbackFilter(typeFilter, nameFilter))
}
