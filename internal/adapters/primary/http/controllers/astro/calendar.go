package astroController

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

const dateLayout = "2006-01-02"

// panchang ?date=YYYY-MM-DD&lat=&lon=&tz=, без date берётся текущий день в tz
func (c *Controller) panchang(ctx *gin.Context) {
	lat, err := floatQuery(ctx, "lat")
	if err != nil {
		c.badRequest(ctx, "lat", err)
		return
	}
	lon, err := floatQuery(ctx, "lon")
	if err != nil {
		c.badRequest(ctx, "lon", err)
		return
	}
	tz, err := floatQuery(ctx, "tz")
	if err != nil {
		c.badRequest(ctx, "tz", err)
		return
	}
	if err := domain.ValidateUTCOffset(tz); err != nil {
		c.respondError(ctx, err)
		return
	}

	date, err := dateQuery(ctx, domain.FixedZone(tz))
	if err != nil {
		c.badRequest(ctx, "date", err)
		return
	}

	day, err := c.AstroService.Panchang(ctx.Request.Context(), date, lat, lon, tz)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, day)
}

func (c *Controller) dailyHoroscope(ctx *gin.Context) {
	sign, ok := c.sign(ctx)
	if !ok {
		return
	}
	date, err := dateQuery(ctx, time.UTC)
	if err != nil {
		c.badRequest(ctx, "date", err)
		return
	}

	horoscope, err := c.AstroService.DailyHoroscope(ctx.Request.Context(), sign, date)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, horoscope)
}

// monthlyHoroscope ?year=&month=, по умолчанию текущий месяц
func (c *Controller) monthlyHoroscope(ctx *gin.Context) {
	sign, ok := c.sign(ctx)
	if !ok {
		return
	}

	now := time.Now().UTC()
	year, err := intQuery(ctx, "year", now.Year())
	if err != nil {
		c.badRequest(ctx, "year", err)
		return
	}
	month, err := intQuery(ctx, "month", int(now.Month()))
	if err != nil {
		c.badRequest(ctx, "month", err)
		return
	}

	horoscope, err := c.AstroService.MonthlyHoroscope(ctx.Request.Context(), sign, year, time.Month(month))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, horoscope)
}

func (c *Controller) sign(ctx *gin.Context) (domain.Sign, bool) {
	sign, err := domain.ParseSign(ctx.Param("sign"))
	if err != nil {
		c.badRequest(ctx, "sign", err)
		return 0, false
	}
	return sign, true
}

func floatQuery(ctx *gin.Context, name string) (float64, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func dateQuery(ctx *gin.Context, loc *time.Location) (time.Time, error) {
	raw := ctx.Query("date")
	if raw == "" {
		y, m, d := time.Now().In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	date, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return date, nil
}
