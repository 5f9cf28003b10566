package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/api/controller"
	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
	"github.com/soundvault/soundvault-backend/repository"
	"github.com/soundvault/soundvault-backend/storage"
	"github.com/soundvault/soundvault-backend/usecase"
)

func NewCategoryRouter(
	timeout time.Duration,
	db mongo.Database,
	cascade *usecase.CascadeDelete,
	resolver *storage.Resolver,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	repo := repository.NewCategoryRepository(db, domain.CollectionCategory)

	uc := usecase.NewCategoryUsecase(repo, cascade, timeout)
	ctrl := controller.NewCategoryController(uc, resolver)

	public.GET("/categories", ctrl.GetCategories)
	protected.POST("/categories", ctrl.AddCategory)
	protected.PUT("/categories/:categoryId", ctrl.UpdateCategory)
	protected.DELETE("/categories/:categoryId", ctrl.DeleteCategory)
}
