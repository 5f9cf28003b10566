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

func NewAudioRouter(
	timeout time.Duration,
	db mongo.Database,
	refs *usecase.ReferenceIntegrity,
	resolver *storage.Resolver,
	uploadRoot string,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	repo := repository.NewAudioRepository(db, domain.CollectionAudio)
	subCategories := repository.NewSubCategoryRepository(db, domain.CollectionSubCategory)
	artists := repository.NewArtistRepository(db, domain.CollectionArtist)

	uc := usecase.NewAudioUsecase(repo, subCategories, artists, refs, uploadRoot, timeout)
	ctrl := controller.NewAudioController(uc, resolver)

	public.GET("/audios", ctrl.GetAudios)
	protected.POST("/audios", ctrl.AddAudio)
	protected.PUT("/audios/:audioId", ctrl.UpdateAudio)
	protected.DELETE("/audios/:audioId", ctrl.DeleteAudio)
}
