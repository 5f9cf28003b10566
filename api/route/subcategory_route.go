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

func NewSubCategoryRouter(
	timeout time.Duration,
	db mongo.Database,
	refs *usecase.ReferenceIntegrity,
	cascade *usecase.CascadeDelete,
	resolver *storage.Resolver,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	repo := repository.NewSubCategoryRepository(db, domain.CollectionSubCategory)
	categories := repository.NewCategoryRepository(db, domain.CollectionCategory)

	uc := usecase.NewSubCategoryUsecase(repo, categories, refs, cascade, timeout)
	ctrl := controller.NewSubCategoryController(uc, resolver)

	public.GET("/subcategories", ctrl.GetSubCategories)
	protected.POST("/subcategories", ctrl.AddSubCategory)
	protected.PUT("/subcategories/:subcategoryId", ctrl.UpdateSubCategory)
	protected.DELETE("/subcategories/:subcategoryId", ctrl.DeleteSubCategory)
}
