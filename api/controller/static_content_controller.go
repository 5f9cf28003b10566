package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/domain"
)

// StaticContentController serves one administered page (privacy policy,
// terms and conditions, about us). Each page gets its own instance.
type StaticContentController struct {
	ContentUsecase domain.StaticContentUsecase
}

func NewStaticContentController(uc domain.StaticContentUsecase) *StaticContentController {
	return &StaticContentController{ContentUsecase: uc}
}

type staticContentRequest struct {
	Content string `form:"content" json:"content" binding:"required"`
}

func (c *StaticContentController) GetContent(ctx *gin.Context) {
	content, err := c.ContentUsecase.Get(ctx.Request.Context())
	if err != nil {
		RespondError(ctx, err)
		return
	}
	if content == nil {
		ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", "no content published")
		return
	}

	ctx.JSON(http.StatusOK, content)
}

func (c *StaticContentController) PutContent(ctx *gin.Context) {
	var request staticContentRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	content, err := c.ContentUsecase.Put(ctx.Request.Context(), request.Content)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, content)
}

func (c *StaticContentController) DeleteContent(ctx *gin.Context) {
	if err := c.ContentUsecase.Delete(ctx.Request.Context()); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}
