package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubCategory struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"subcategory_name" json:"subcategoryName"`
	Image       Asset                `bson:"image" json:"image"`
	Description string               `bson:"description" json:"description"`
	CategoryID  primitive.ObjectID   `bson:"category" json:"categoryId"`
	Audios      []primitive.ObjectID `bson:"audios" json:"audios"`
}

type SubCategoryInput struct {
	Name        string
	Description string
	CategoryID  primitive.ObjectID // zero means unchanged
	Image       *Asset
}

type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *SubCategory) error
	Fetch(ctx context.Context, nameFilter string, skip, limit int64) ([]SubCategory, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*SubCategory, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, nameFilter string) (int64, error)
}

type SubCategoryUsecase interface {
	List(ctx context.Context, nameFilter string, page, limit int64) ([]SubCategory, int64, error)
	Create(ctx context.Context, input SubCategoryInput) (*SubCategory, error)
	Update(ctx context.Context, id primitive.ObjectID, input SubCategoryInput) (*SubCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*CascadeResult, error)
}
