package httpserver

import (
	"net/http"

	"crisis-alert-srv/config/postgre"
	"crisis-alert-srv/pkg/errors"
	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "crisis-alert-srv"
	serviceVersion = "1.0.0"

	statusConnected = "connected"
	statusDisabled  = "disabled"
	statusDown      = "unavailable"
)

// dependencies pings the optional stores. A nil store reports "disabled".
func (srv *HTTPServer) dependencies(c *gin.Context) (gin.H, bool) {
	ctx := c.Request.Context()
	deps := gin.H{"postgres": statusDisabled, "redis": statusDisabled}
	ok := true

	if srv.db != nil {
		if err := postgre.HealthCheck(ctx, srv.db); err != nil {
			srv.logger.Warnf(ctx, "internal.httpserver.dependencies: postgres: %v", err)
			deps["postgres"] = statusDown
			ok = false
		} else {
			deps["postgres"] = statusConnected
		}
	}
	if srv.redis != nil {
		if _, err := srv.redis.Ping(ctx); err != nil {
			srv.logger.Warnf(ctx, "internal.httpserver.dependencies: redis: %v", err)
			deps["redis"] = statusDown
			ok = false
		} else {
			deps["redis"] = statusConnected
		}
	}
	return deps, ok
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Report the service and its audit stores. Store outages degrade the status but never fail the check, since chat keeps working without them.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	deps, ok := srv.dependencies(c)
	status := "healthy"
	if !ok {
		status = "degraded"
	}

	response.OK(c, gin.H{
		"status":      status,
		"version":     serviceVersion,
		"service":     serviceName,
		"environment": srv.environment,
		"postgres":    deps["postgres"],
		"redis":       deps["redis"],
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if every enabled store is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	deps, ok := srv.dependencies(c)
	if !ok {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Risk event store not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"version":  serviceVersion,
		"service":  serviceName,
		"postgres": deps["postgres"],
		"redis":    deps["redis"],
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
