package astroController

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

const defaultProfilesLimit = 20

func (c *Controller) createProfile(ctx *gin.Context) {
	var birth domain.BirthData
	if err := ctx.ShouldBindJSON(&birth); err != nil {
		c.badRequest(ctx, "body", err)
		return
	}

	profile, report, err := c.AstroService.CreateProfile(ctx.Request.Context(), birth)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.Header("Location", "/api/v1/profiles/"+profile.ID.String())
	ctx.JSON(http.StatusCreated, ProfileWithReportResponse{
		Profile: toProfileResponse(profile),
		Report:  report,
	})
}

func (c *Controller) listProfiles(ctx *gin.Context) {
	limit, err := intQuery(ctx, "limit", defaultProfilesLimit)
	if err != nil {
		c.badRequest(ctx, "limit", err)
		return
	}
	offset, err := intQuery(ctx, "offset", 0)
	if err != nil {
		c.badRequest(ctx, "offset", err)
		return
	}

	profiles, err := c.AstroService.ListProfiles(ctx.Request.Context(), limit, offset)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	resp := ProfilesResponse{
		Profiles: make([]ProfileResponse, 0, len(profiles)),
		Limit:    limit,
		Offset:   offset,
	}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, toProfileResponse(p))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) getProfile(ctx *gin.Context) {
	id, ok := c.profileID(ctx)
	if !ok {
		return
	}

	profile, err := c.AstroService.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

func (c *Controller) deleteProfile(ctx *gin.Context) {
	id, ok := c.profileID(ctx)
	if !ok {
		return
	}

	if err := c.AstroService.DeleteProfile(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// profileReport сохранённый отчёт профиля
func (c *Controller) profileReport(ctx *gin.Context) {
	id, ok := c.profileID(ctx)
	if !ok {
		return
	}

	report, err := c.AstroService.ProfileReport(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func (c *Controller) recomputeProfile(ctx *gin.Context) {
	id, ok := c.profileID(ctx)
	if !ok {
		return
	}

	profile, report, err := c.AstroService.RecomputeProfile(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ProfileWithReportResponse{
		Profile: toProfileResponse(profile),
		Report:  report,
	})
}

func (c *Controller) snapshotURL(ctx *gin.Context) {
	id, ok := c.profileID(ctx)
	if !ok {
		return
	}

	url, err := c.AstroService.SnapshotURL(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, SnapshotURLResponse{URL: url})
}

func (c *Controller) profileID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.badRequest(ctx, "id", fmt.Errorf("invalid profile id: %w", err))
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(ctx *gin.Context, name string, def int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
