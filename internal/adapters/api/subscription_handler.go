package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/core/controller"
	"prayertimes.app/internal/core/payment"
	"prayertimes.app/internal/ports"
)

// SubscribeResponse reports the payment outcome together with the new state
type SubscribeResponse struct {
	Outcome payment.Outcome `json:"outcome"`
	State   controller.View `json:"state"`
}

// subscribe handles POST /api/subscribe; it blocks until the host answers
func (s *HTTPServerAdapter) subscribe(c *gin.Context) {
	ctx := c.Request.Context()
	if s.paymentTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.paymentTimeout)
		defer cancel()
	}

	outcome, err := s.controller.Subscribe(ctx)
	if err != nil {
		s.logger.Warn("Subscribe failed", ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubscribeResponse{Outcome: outcome, State: s.controller.View()})
}
