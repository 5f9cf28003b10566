package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/storage"
)

type ArtistController struct {
	ArtistUsecase domain.ArtistUsecase
	Resolver      *storage.Resolver
}

func NewArtistController(uc domain.ArtistUsecase, resolver *storage.Resolver) *ArtistController {
	return &ArtistController{ArtistUsecase: uc, Resolver: resolver}
}

func (c *ArtistController) GetArtists(ctx *gin.Context) {
	nameFilter := ctx.Query("name")
	page, _ := strconv.ParseInt(ctx.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)

	artists, total, err := c.ArtistUsecase.List(ctx.Request.Context(), nameFilter, page, limit)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"artists":      artists,
		"totalArtists": total,
		"totalPages":   totalPages(total, limit),
		"currentPage":  page,
		"pageSize":     limit,
	})
}

func (c *ArtistController) AddArtist(ctx *gin.Context) {
	image, err := storeFormFile(ctx, c.Resolver, "image", storage.RoleArtistImage)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	artist, err := c.ArtistUsecase.Create(ctx.Request.Context(), domain.ArtistInput{
		Name:  ctx.PostForm("name"),
		Bio:   ctx.PostForm("bio"),
		Image: image,
	})
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": artist})
}

func (c *ArtistController) GetArtistByID(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("artistId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid artistId")
		return
	}

	artist, err := c.ArtistUsecase.GetByID(ctx.Request.Context(), id)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, artist)
}

func (c *ArtistController) UpdateArtist(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("artistId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid artistId")
		return
	}

	image, err := storeFormFile(ctx, c.Resolver, "image", storage.RoleArtistImage)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	artist, err := c.ArtistUsecase.Update(ctx.Request.Context(), id, domain.ArtistInput{
		Name:  ctx.PostForm("name"),
		Bio:   ctx.PostForm("bio"),
		Image: image,
	})
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Artist updated successfully", "data": artist})
}

func (c *ArtistController) DeleteArtist(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("artistId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid artistId")
		return
	}

	if err := c.ArtistUsecase.Delete(ctx.Request.Context(), id); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Artist deleted successfully"})
}

func (c *ArtistController) GetArtistSongs(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("artistId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid artistId")
		return
	}

	page, _ := strconv.ParseInt(ctx.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)

	songs, total, err := c.ArtistUsecase.Songs(ctx.Request.Context(), id, page, limit)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"songs":       songs,
		"totalSongs":  total,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"pageSize":    limit,
	})
}
