package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Audio struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title             string             `bson:"title" json:"title"`
	AudioFile         *Asset             `bson:"audio" json:"audio"`
	Image             *Asset             `bson:"image" json:"image"`
	Lyrics            *Asset             `bson:"lyrics" json:"lyrics"`
	Duration          int                `bson:"duration" json:"duration"`
	DurationFormatted string             `bson:"durationFormatted" json:"durationFormatted"`
	SubcategoryID     primitive.ObjectID `bson:"subcategory" json:"subcategoryId"`
	ArtistID          primitive.ObjectID `bson:"artist" json:"artistId"`
}

type AudioInput struct {
	Title         string
	SubcategoryID primitive.ObjectID // zero means unchanged
	ArtistID      primitive.ObjectID
	AudioFile     *Asset
	Image         *Asset
	Lyrics        *Asset

	// Duration is a manual override in whole seconds. When set it takes
	// precedence over extraction from a newly uploaded audio file.
	Duration *int
}

type AudioRepository interface {
	Create(ctx context.Context, audio *Audio) error
	Fetch(ctx context.Context, titleFilter string) ([]Audio, error)
	FetchByArtist(ctx context.Context, artistID primitive.ObjectID, skip, limit int64) ([]Audio, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Audio, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, titleFilter string) (int64, error)
	CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error)
}

type AudioUsecase interface {
	List(ctx context.Context, titleFilter string) ([]Audio, int64, error)
	Create(ctx context.Context, input AudioInput) (*Audio, error)
	Update(ctx context.Context, id primitive.ObjectID, input AudioInput) (*Audio, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
