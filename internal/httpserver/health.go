package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event-planner/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "event-planner"
)

type probeResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func probe(status string) probeResp {
	return probeResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck reports not ready once shutdown has started so load balancers
// stop routing new planning runs here while in-flight ones drain.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.draining.Load() {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "draining",
			Data:      probe("draining"),
		})
		return
	}
	response.OK(c, probe("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}
