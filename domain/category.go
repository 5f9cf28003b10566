package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"category_name" json:"categoryName"`
	Image         Asset                `bson:"image" json:"image"`
	Description   string               `bson:"description" json:"description"`
	Subcategories []primitive.ObjectID `bson:"subcategories" json:"subcategories"`
}

// CategoryInput carries a partial mutation: zero-valued fields are retained
// from the previous version of the entity.
type CategoryInput struct {
	Name        string
	Description string
	Image       *Asset
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Fetch(ctx context.Context, nameFilter string, skip, limit int64) ([]Category, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, nameFilter string) (int64, error)
}

type CategoryUsecase interface {
	List(ctx context.Context, nameFilter string, page, limit int64) ([]Category, int64, error)
	Create(ctx context.Context, input CategoryInput) (*Category, error)
	Update(ctx context.Context, id primitive.ObjectID, input CategoryInput) (*Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*CascadeResult, error)
}
