package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/domain"
)

type LoginController struct {
	LoginUsecase domain.LoginUsecase
}

func NewLoginController(uc domain.LoginUsecase) *LoginController {
	return &LoginController{LoginUsecase: uc}
}

func (c *LoginController) Login(ctx *gin.Context) {
	var request domain.LoginRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	response, err := c.LoginUsecase.Login(ctx.Request.Context(), request)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
