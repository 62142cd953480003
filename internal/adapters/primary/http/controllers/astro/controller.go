package astroController

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/admin/astro-services/jyotish/internal/ports/usecase"
)

type Controller struct {
	AstroService usecase.IAstroUsecase
	Log          *slog.Logger
}

func New(astroService usecase.IAstroUsecase, log *slog.Logger) *Controller {
	return &Controller{
		AstroService: astroService,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/charts", c.computeChart)
		api.POST("/charts/context", c.chatContext)
		api.POST("/match", c.matchCharts)

		api.GET("/panchang", c.panchang)
		api.GET("/horoscope/:sign/daily", c.dailyHoroscope)
		api.GET("/horoscope/:sign/monthly", c.monthlyHoroscope)
	}

	profiles := api.Group("/profiles")
	{
		profiles.POST("", c.createProfile)
		profiles.GET("", c.listProfiles)
		profiles.GET("/:id", c.getProfile)
		profiles.DELETE("/:id", c.deleteProfile)
		profiles.GET("/:id/report", c.profileReport)
		profiles.POST("/:id/recompute", c.recomputeProfile)
		profiles.GET("/:id/snapshot-url", c.snapshotURL)
	}
}
