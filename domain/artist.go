package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Artist struct {
	ID     primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name   string               `bson:"name" json:"name"`
	Bio    string               `bson:"bio" json:"bio"`
	Image  Asset                `bson:"image" json:"image"`
	Audios []primitive.ObjectID `bson:"audios" json:"audios"`
}

type ArtistInput struct {
	Name  string
	Bio   string
	Image *Asset
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	Fetch(ctx context.Context, nameFilter string, skip, limit int64) ([]Artist, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Artist, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, nameFilter string) (int64, error)
}

type ArtistUsecase interface {
	List(ctx context.Context, nameFilter string, page, limit int64) ([]Artist, int64, error)
	Create(ctx context.Context, input ArtistInput) (*Artist, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Artist, error)
	Update(ctx context.Context, id primitive.ObjectID, input ArtistInput) (*Artist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Songs(ctx context.Context, artistID primitive.ObjectID, page, limit int64) ([]Audio, int64, error)
}
