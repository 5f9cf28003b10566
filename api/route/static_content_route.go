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

func NewStaticContentRouter(
	timeout time.Duration,
	db mongo.Database,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	pages := []struct {
		path       string
		collection string
	}{
		{"/privacy-policy", domain.CollectionPrivacyPolicy},
		{"/terms-and-conditions", domain.CollectionTermsAndConditions},
		{"/about-us", domain.CollectionAboutUs},
	}

	for _, page := range pages {
		repo := repository.NewStaticContentRepository(db, page.collection)
		uc := usecase.NewStaticContentUsecase(repo, timeout)
		ctrl := controller.NewStaticContentController(uc)

		public.GET(page.path, ctrl.GetContent)
		protected.POST(page.path, ctrl.PutContent)
		protected.DELETE(page.path, ctrl.DeleteContent)
	}
}
