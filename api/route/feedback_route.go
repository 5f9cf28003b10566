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

func NewFeedbackRouter(
	timeout time.Duration,
	db mongo.Database,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	repo := repository.NewFeedbackRepository(db, domain.CollectionFeedback)

	uc := usecase.NewFeedbackUsecase(repo, timeout)
	ctrl := controller.NewFeedbackController(uc)

	public.POST("/feedback", ctrl.SubmitFeedback)
	protected.GET("/feedback", ctrl.GetFeedback)
}
