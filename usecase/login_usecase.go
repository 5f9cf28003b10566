package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/internal/tokenutil"
)

type loginUsecase struct {
	adminUserRepository domain.AdminUserRepository
	accessTokenSecret   string
	accessTokenExpiry   int
	contextTimeout      time.Duration
}

func NewLoginUsecase(
	adminUserRepository domain.AdminUserRepository,
	accessTokenSecret string,
	accessTokenExpiry int,
	timeout time.Duration,
) domain.LoginUsecase {
	return &loginUsecase{
		adminUserRepository: adminUserRepository,
		accessTokenSecret:   accessTokenSecret,
		accessTokenExpiry:   accessTokenExpiry,
		contextTimeout:      timeout,
	}
}

func (uc *loginUsecase) Login(ctx context.Context, request domain.LoginRequest) (domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	user, err := uc.adminUserRepository.GetByEmail(ctx, request.Email)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if user == nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	accessToken, err := tokenutil.CreateAccessToken(user, uc.accessTokenSecret, uc.accessTokenExpiry)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{AccessToken: accessToken}, nil
}
