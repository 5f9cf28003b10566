package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/storage"
)

type AudioController struct {
	AudioUsecase domain.AudioUsecase
	Resolver     *storage.Resolver
}

func NewAudioController(uc domain.AudioUsecase, resolver *storage.Resolver) *AudioController {
	return &AudioController{AudioUsecase: uc, Resolver: resolver}
}

func (c *AudioController) GetAudios(ctx *gin.Context) {
	audios, total, err := c.AudioUsecase.List(ctx.Request.Context(), ctx.Query("title"))
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"audios": audios, "totalAudios": total})
}

// audioInputFromForm gathers the multipart fields shared by create and update.
// Any of the three file fields may be absent.
func (c *AudioController) audioInputFromForm(ctx *gin.Context) (domain.AudioInput, bool) {
	input := domain.AudioInput{Title: ctx.PostForm("title")}

	if raw := ctx.PostForm("subcategoryId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid subcategoryId")
			return input, false
		}
		input.SubcategoryID = id
	}
	if raw := ctx.PostForm("artistId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid artistId")
			return input, false
		}
		input.ArtistID = id
	}
	if raw := ctx.PostForm("duration"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 0 {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_DURATION", "duration must be a non-negative integer")
			return input, false
		}
		input.Duration = &seconds
	}

	audioFile, err := storeFormFile(ctx, c.Resolver, "audio", storage.RoleAudioFile)
	if err != nil {
		RespondError(ctx, err)
		return input, false
	}
	input.AudioFile = audioFile

	image, err := storeFormFile(ctx, c.Resolver, "image", storage.RoleAudioImage)
	if err != nil {
		RespondError(ctx, err)
		return input, false
	}
	input.Image = image

	lyrics, err := storeFormFile(ctx, c.Resolver, "lyrics", storage.RoleAudioLyrics)
	if err != nil {
		RespondError(ctx, err)
		return input, false
	}
	input.Lyrics = lyrics

	return input, true
}

func (c *AudioController) AddAudio(ctx *gin.Context) {
	input, ok := c.audioInputFromForm(ctx)
	if !ok {
		return
	}
	if input.AudioFile == nil {
		ErrorResponse(ctx, http.StatusBadRequest, "AUDIO_REQUIRED", "audio file is required")
		return
	}

	audio, err := c.AudioUsecase.Create(ctx.Request.Context(), input)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": audio})
}

func (c *AudioController) UpdateAudio(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("audioId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid audioId")
		return
	}

	input, ok := c.audioInputFromForm(ctx)
	if !ok {
		return
	}

	audio, err := c.AudioUsecase.Update(ctx.Request.Context(), id, input)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Audio updated successfully", "data": audio})
}

func (c *AudioController) DeleteAudio(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("audioId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid audioId")
		return
	}

	if err := c.AudioUsecase.Delete(ctx.Request.Context(), id); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Audio deleted successfully"})
}
