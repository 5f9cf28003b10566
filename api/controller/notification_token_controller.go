package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
)

type NotificationTokenController struct {
	TokenUsecase domain.NotificationTokenUsecase
}

func NewNotificationTokenController(uc domain.NotificationTokenUsecase) *NotificationTokenController {
	return &NotificationTokenController{TokenUsecase: uc}
}

type notificationTokenRequest struct {
	Token string `form:"token" json:"token" binding:"required"`
}

func (c *NotificationTokenController) StoreToken(ctx *gin.Context) {
	var request notificationTokenRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	token, created, err := c.TokenUsecase.Store(ctx.Request.Context(), request.Token)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, gin.H{"success": true, "data": token})
}

func (c *NotificationTokenController) GetTokens(ctx *gin.Context) {
	tokens, err := c.TokenUsecase.List(ctx.Request.Context())
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"results": tokens,
		"total":   len(tokens),
	})
}

func (c *NotificationTokenController) DeleteToken(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("tokenId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid tokenId")
		return
	}

	if err := c.TokenUsecase.Delete(ctx.Request.Context(), id); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Notification token deleted successfully"})
}
