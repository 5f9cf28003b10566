package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}

type AdminUserRepository interface {
	Create(ctx context.Context, user *AdminUser) error
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type LoginUsecase interface {
	Login(ctx context.Context, request LoginRequest) (LoginResponse, error)
}
