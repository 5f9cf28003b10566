package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/api/controller"
	"github.com/soundvault/soundvault-backend/bootstrap"
	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
	"github.com/soundvault/soundvault-backend/repository"
	"github.com/soundvault/soundvault-backend/usecase"
)

func NewLoginRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	public *gin.RouterGroup,
) {
	repo := repository.NewAdminUserRepository(db, domain.CollectionAdminUser)

	uc := usecase.NewLoginUsecase(repo, env.AccessTokenSecret, env.AccessTokenExpiryHour, timeout)
	ctrl := controller.NewLoginController(uc)

	public.POST("/login", ctrl.Login)
}
