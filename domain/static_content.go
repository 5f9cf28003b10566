package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaticContent is a single administered document such as the privacy policy
// or the about-us page. Each page lives alone in its own collection.
type StaticContent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content     string             `bson:"content" json:"content"`
	LastUpdated time.Time          `bson:"last_updated" json:"lastUpdated"`
}

type StaticContentRepository interface {
	Get(ctx context.Context) (*StaticContent, error)
	Upsert(ctx context.Context, content string) (*StaticContent, error)
	DeleteAll(ctx context.Context) error
}

type StaticContentUsecase interface {
	Get(ctx context.Context) (*StaticContent, error)
	Put(ctx context.Context, content string) (*StaticContent, error)
	Delete(ctx context.Context) error
}
