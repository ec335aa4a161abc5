package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// DeviceLocationRequest carries the position reported by the host's geolocation API
type DeviceLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// TimezoneRequest represents POST /api/location/timezone
type TimezoneRequest struct {
	Timezone string `json:"timezone" binding:"required,timezone"`
}

// deviceLocation handles POST /api/location/device. Resolution runs in the
// background; the front end picks the result up from /api/state.
func (s *HTTPServerAdapter) deviceLocation(c *gin.Context) {
	var req DeviceLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err))
		s.handleError(c, errors.NewValidationError("latitude and longitude are required and must be valid coordinates"))
		return
	}

	s.controller.DeviceLocation(*req.Latitude, *req.Longitude)
	c.JSON(http.StatusAccepted, s.controller.View())
}

// deviceLocationUnsupported handles POST /api/location/unsupported
func (s *HTTPServerAdapter) deviceLocationUnsupported(c *gin.Context) {
	s.controller.DeviceLocationUnsupported()
	c.JSON(http.StatusOK, s.controller.View())
}

// selectTimezone handles POST /api/location/timezone
func (s *HTTPServerAdapter) selectTimezone(c *gin.Context) {
	var req TimezoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err))
		s.handleError(c, errors.NewValidationError("timezone must be one of the supported zones"))
		return
	}

	if err := s.controller.SelectTimezone(location.TimeZoneFromString(req.Timezone)); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.controller.View())
}

// confirmLocation handles POST /api/location/confirm
func (s *HTTPServerAdapter) confirmLocation(c *gin.Context) {
	s.controller.ConfirmLocation()
	c.JSON(http.StatusOK, s.controller.View())
}
