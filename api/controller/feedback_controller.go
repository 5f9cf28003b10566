package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/domain"
)

type FeedbackController struct {
	FeedbackUsecase domain.FeedbackUsecase
}

func NewFeedbackController(uc domain.FeedbackUsecase) *FeedbackController {
	return &FeedbackController{FeedbackUsecase: uc}
}

type feedbackRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Rating  int    `form:"rating" json:"rating"`
	Comment string `form:"comment" json:"comment"`
}

func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var request feedbackRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	feedback, err := c.FeedbackUsecase.Submit(ctx.Request.Context(), domain.FeedbackInput{
		Name:    request.Name,
		Rating:  request.Rating,
		Comment: request.Comment,
	})
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, feedback)
}

func (c *FeedbackController) GetFeedback(ctx *gin.Context) {
	typeFilter := ctx.Query("type")
	nameFilter := ctx.Query("search")
	page, _ := strconv.ParseInt(ctx.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)

	feedback, total, err := c.FeedbackUsecase.List(ctx.Request.Context(), typeFilter, nameFilter, page, limit)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"feedback":      feedback,
		"totalFeedback": total,
		"totalPages":    totalPages(total, limit),
		"currentPage":   page,
		"pageSize":      limit,
	})
}
