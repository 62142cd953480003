package astroController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// computeChart полный отчёт по карте без сохранения профиля
func (c *Controller) computeChart(ctx *gin.Context) {
	var birth domain.BirthData
	if err := ctx.ShouldBindJSON(&birth); err != nil {
		c.badRequest(ctx, "body", err)
		return
	}

	report, err := c.AstroService.ComputeChart(ctx.Request.Context(), birth)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// chatContext плоские поля карты для чат-бота
func (c *Controller) chatContext(ctx *gin.Context) {
	var birth domain.BirthData
	if err := ctx.ShouldBindJSON(&birth); err != nil {
		c.badRequest(ctx, "body", err)
		return
	}

	chat, err := c.AstroService.ChatContext(ctx.Request.Context(), birth)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chat)
}

func (c *Controller) matchCharts(ctx *gin.Context) {
	var req MatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, "body", err)
		return
	}

	result, err := c.AstroService.Match(ctx.Request.Context(), *req.Groom, *req.Bride)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
