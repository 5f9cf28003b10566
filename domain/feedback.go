package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeedbackTypeRating   = "rating"
	FeedbackTypeFeedback = "feedback"
	FeedbackTypeBoth     = "both"
)

type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment   string             `bson:"comment" json:"comment"`
	Type      string             `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// FeedbackInput carries a user submission. Rating zero means no rating was
// given; the stored type is derived from which fields are present.
type FeedbackInput struct {
	Name    string
	Rating  int
	Comment string
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *Feedback) error
	Fetch(ctx context.Context, typeFilter, nameFilter string, skip, limit int64) ([]Feedback, error)
	Count(ctx context.Context, typeFilter, nameFilter string) (int64, error)
}

type FeedbackUsecase interface {
	Submit(ctx context.Context, input FeedbackInput) (*Feedback, error)
	List(ctx context.Context, typeFilter, nameFilter string, page, limit int64) ([]Feedback, int64, error)
}
