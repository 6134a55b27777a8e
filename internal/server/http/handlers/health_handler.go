package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/careerpath/internal/server/http/dto"
)

// HealthHandler serves liveness and database health checks.
type HealthHandler struct {
	facade HealthFacade
	now    func() time.Time
}

func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade, now: time.Now}
}

// Live handles GET /health.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "OK"})
}

// Database handles GET /healthz/db.
func (h *HealthHandler) Database(c *gin.Context) {
	count, err := h.facade.DatabaseHealth(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.DatabaseHealthResponse{
			Success:   false,
			Message:   "Database connection failed",
			Timestamp: h.now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.DatabaseHealthResponse{
		Success:   true,
		Message:   "Database connection successful",
		UserCount: count,
		Timestamp: h.now().UTC(),
	})
}
