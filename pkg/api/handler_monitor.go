package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight/newsflow/ent/pipelinejob"
)

// triggerMonitorHandler handles POST /admin/news/trigger-monitor. It enqueues
// an immediate dispatcher run; the worker pool picks it up like any scheduled
// run, so an in-flight run simply makes this one a no-op when it starts.
func (s *Server) triggerMonitorHandler(c *gin.Context) {
	jobID, err := s.deps.Jobs.Enqueue(c.Request.Context(), pipelinejob.KindMonitor, nil)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": jobID})
}

// monitorStatusHandler handles GET /admin/news/monitor-status.
func (s *Server) monitorStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Monitor.Status())
}
