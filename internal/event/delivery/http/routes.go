package http

import (
	"github.com/gin-gonic/gin"

	"event-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/plans", mw.RateLimit(), h.PlanEvent)
	rg.POST("/intents", mw.RateLimit(), h.ExtractIntent)
}
