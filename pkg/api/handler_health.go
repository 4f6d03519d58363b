package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsight/newsflow/pkg/database"
	"github.com/finsight/newsflow/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]interface{} `json:"checks"`
}

// healthHandler handles GET /health. Only our own components (database,
// worker pool) are checked; external dependencies are excluded so an LLM or
// feed outage doesn't get the process restarted.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy
	checks := make(map[string]interface{})

	if s.deps.DB != nil {
		dbHealth, err := database.Health(reqCtx, s.deps.DB)
		checks["database"] = dbHealth
		if err != nil {
			status = healthStatusUnhealthy
		}
	}

	if s.deps.Pool != nil {
		poolHealth := s.deps.Pool.Health()
		checks["worker_pool"] = poolHealth
		if !poolHealth.IsHealthy && status == healthStatusHealthy {
			status = healthStatusDegraded
		}
	}

	code := http.StatusOK
	if status == healthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{Status: status, Version: version.Full(), Checks: checks})
}
