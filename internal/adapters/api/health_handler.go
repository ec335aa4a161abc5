package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/adapters/infrastructure"
)

// getHealth handles GET /api/health
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.health.CheckAll(c.Request.Context())

	status := http.StatusOK
	if !infrastructure.IsHealthy(results) {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, results)
}
