package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
)

type adminUserRepository struct {
	db         mongo.Database
	collection string
}

func NewAdminUserRepository(db mongo.Database, collection string) domain.AdminUserRepository {
	return &adminUserRepository{
		db:         db,
		collection: collection,
	}
}

func (r *adminUserRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	coll := r.db.Collection(r.collection)

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("admin user insert failed: %w", err)
	}
	return nil
}

func (r *adminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	coll := r.db.Collection(r.collection)
	result := coll.FindOne(ctx, bson.M{"email": email})

	var user domain.AdminUser
	if err := result.Decode(&user); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user by email failed: %w", err)
	}
	return &user, nil
}
