package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// TimezoneOption is one entry of the timezone selector
type TimezoneOption struct {
	ID      string `json:"id"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// TimezonesResponse lists the selectable zones in display order
type TimezonesResponse struct {
	Default   string           `json:"default"`
	Timezones []TimezoneOption `json:"timezones"`
}

// DateRequest represents PUT /api/date
type DateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// getState handles GET /api/state
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.controller.View())
}

// getTimezones handles GET /api/timezones
func (s *HTTPServerAdapter) getTimezones(c *gin.Context) {
	zones := location.AllTimeZones()
	options := make([]TimezoneOption, 0, len(zones))
	for _, tz := range zones {
		loc := tz.Location()
		options = append(options, TimezoneOption{ID: tz.String(), City: loc.City, Country: loc.Country})
	}

	c.JSON(http.StatusOK, TimezonesResponse{
		Default:   location.DefaultTimeZone.String(),
		Timezones: options,
	})
}

// selectDate handles PUT /api/date
func (s *HTTPServerAdapter) selectDate(c *gin.Context) {
	var req DateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err))
		s.handleError(c, errors.NewValidationError("date must be in YYYY-MM-DD format"))
		return
	}

	date, err := prayer.ParseDate(req.Date)
	if err != nil {
		s.handleError(c, errors.NewValidationError("date must be in YYYY-MM-DD format"))
		return
	}

	if err := s.controller.SelectDate(date); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.controller.View())
}
