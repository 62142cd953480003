package astroController

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/astro-services/jyotish/internal/domain"
	astroUsecase "github.com/admin/astro-services/jyotish/internal/usecases/astro"
)

// respondError переводит ошибку usecase в HTTP статус
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error(), Field: validationErr.Field})
	case errors.Is(err, domain.ErrUndefinedForLocation):
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, astroUsecase.ErrNoSnapshot):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, astroUsecase.ErrSnapshotsDisabled):
		ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "request timed out"})
	default:
		// BusinessError уже залогирована в usecase
		if !domain.IsBusinessError(err) {
			c.Log.ErrorContext(ctx.Request.Context(), "request failed", "error", err, "path", ctx.FullPath())
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func (c *Controller) badRequest(ctx *gin.Context, field string, err error) {
	c.Log.WarnContext(ctx.Request.Context(), "invalid request", "field", field, "error", err)
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: field})
}
