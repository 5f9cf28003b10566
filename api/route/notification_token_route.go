package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/api/controller"
	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
	"github.com/soundvault/soundvault-backend/repository"
	"github.com/soundvault/soundvault-backend/usecase"
)

func NewNotificationTokenRouter(
	timeout time.Duration,
	db mongo.Database,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	repo := repository.NewNotificationTokenRepository(db, domain.CollectionNotificationToken)

	uc := usecase.NewNotificationTokenUsecase(repo, timeout)
	ctrl := controller.NewNotificationTokenController(uc)

	public.POST("/notification-tokens", ctrl.StoreToken)
	protected.GET("/notification-tokens", ctrl.GetTokens)
	protected.DELETE("/notification-tokens/:tokenId", ctrl.DeleteToken)
}
