package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/domain"
)

type StatsController struct {
	StatsUsecase domain.StatsUsecase
}

func NewStatsController(uc domain.StatsUsecase) *StatsController {
	return &StatsController{StatsUsecase: uc}
}

func (c *StatsController) GetTotalNumbers(ctx *gin.Context) {
	totals, err := c.StatsUsecase.Totals(ctx.Request.Context())
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, totals)
}
