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

func NewArtistRouter(
	timeout time.Duration,
	db mongo.Database,
	resolver *storage.Resolver,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	repo := repository.NewArtistRepository(db, domain.CollectionArtist)
	audios := repository.NewAudioRepository(db, domain.CollectionAudio)

	uc := usecase.NewArtistUsecase(repo, audios, timeout)
	ctrl := controller.NewArtistController(uc, resolver)

	public.GET("/artists", ctrl.GetArtists)
	public.GET("/artists/:artistId", ctrl.GetArtistByID)
	public.GET("/artists/:artistId/songs", ctrl.GetArtistSongs)
	protected.POST("/artists", ctrl.AddArtist)
	protected.PUT("/artists/:artistId", ctrl.UpdateArtist)
	protected.DELETE("/artists/:artistId", ctrl.DeleteArtist)
}
