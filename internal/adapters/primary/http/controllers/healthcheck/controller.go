package healthcheckController

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const readyTimeout = 2 * time.Second

// Pinger зависимость, доступность которой проверяет /ready
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheckController struct {
	checks map[string]Pinger
	log    *slog.Logger
}

// New checks имя зависимости -> проверка; nil значения пропускаются
func New(log *slog.Logger, checks map[string]Pinger) *HealthCheckController {
	active := make(map[string]Pinger, len(checks))
	for name, check := range checks {
		if check != nil {
			active[name] = check
		}
	}
	return &HealthCheckController{
		checks: active,
		log:    log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "jyotish",
	})
}

// ready пингует все зависимости, 503 если недоступна хотя бы одна
func (c *HealthCheckController) ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
	defer cancel()

	var failed []string
	for name, check := range c.checks {
		if err := check.Ping(pingCtx); err != nil {
			c.log.ErrorContext(ctx.Request.Context(), "dependency not ready", "dependency", name, "error", err)
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "not ready",
			"unavailable": failed,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
