package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "event-planner/internal/event/delivery/http"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "HTTP mode: production, request logging disabled")
		return
	}
	srv.gin.Use(gin.Logger())
	srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")
	eventHTTP.RegisterRoutes(api, srv.eventHandler, srv.middleware)
	srv.l.Infof(context.Background(), "Event routes registered at POST /api/v1/plans and POST /api/v1/intents")
}
