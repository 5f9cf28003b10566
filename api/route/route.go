package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/api/middleware"
	"github.com/soundvault/soundvault-backend/bootstrap"
	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/mongo"
	"github.com/soundvault/soundvault-backend/repository"
	"github.com/soundvault/soundvault-backend/storage"
	"github.com/soundvault/soundvault-backend/usecase"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	categories := repository.NewCategoryRepository(db, domain.CollectionCategory)
	subCategories := repository.NewSubCategoryRepository(db, domain.CollectionSubCategory)
	artists := repository.NewArtistRepository(db, domain.CollectionArtist)
	audios := repository.NewAudioRepository(db, domain.CollectionAudio)

	refs := usecase.NewReferenceIntegrity(categories, subCategories, artists, audios)
	cascade := usecase.NewCascadeDelete(categories, subCategories, audios, refs)
	resolver := storage.NewResolver(env.UploadRoot)

	// Stored asset paths are served verbatim from the upload root.
	gin.Static("/"+storage.PublicRoot, env.UploadRoot)

	public := gin.Group("/api/v1")
	protected := gin.Group("/api/v1")
	protected.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	NewLoginRouter(env, timeout, db, public)
	NewCategoryRouter(timeout, db, cascade, resolver, public, protected)
	NewSubCategoryRouter(timeout, db, refs, cascade, resolver, public, protected)
	NewAudioRouter(timeout, db, refs, resolver, env.UploadRoot, public, protected)
	NewArtistRouter(timeout, db, resolver, public, protected)
	NewStatsRouter(timeout, db, protected)
	NewStaticContentRouter(timeout, db, public, protected)
	NewFeedbackRouter(timeout, db, public, protected)
	NewNotificationTokenRouter(timeout, db, public, protected)
}
