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

func NewStatsRouter(
	timeout time.Duration,
	db mongo.Database,
	protected *gin.RouterGroup,
) {
	categories := repository.NewCategoryRepository(db, domain.CollectionCategory)
	subCategories := repository.NewSubCategoryRepository(db, domain.CollectionSubCategory)
	audios := repository.NewAudioRepository(db, domain.CollectionAudio)

	uc := usecase.NewStatsUsecase(categories, subCategories, audios, timeout)
	ctrl := controller.NewStatsController(uc)

	protected.GET("/stats/totals", ctrl.GetTotalNumbers)
}
