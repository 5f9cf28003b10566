package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationToken is a device push token registered by a client. Tokens are
// not tied to a user account.
type NotificationToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Token     string             `bson:"token" json:"token"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type NotificationTokenRepository interface {
	Create(ctx context.Context, token *NotificationToken) error
	GetByToken(ctx context.Context, token string) (*NotificationToken, error)
	Fetch(ctx context.Context) ([]NotificationToken, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type NotificationTokenUsecase interface {
	// Store registers a token if it is not known yet. The second return
	// reports whether a new record was created.
	Store(ctx context.Context, token string) (*NotificationToken, bool, error)
	List(ctx context.Context) ([]NotificationToken, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
