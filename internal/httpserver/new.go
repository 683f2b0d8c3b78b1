package httpserver

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	eventHTTP "event-planner/internal/event/delivery/http"
	"event-planner/internal/middleware"
	"event-planner/pkg/log"
)

const (
	readTimeout     = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	writeTimeout time.Duration

	// Event domain
	eventHandler eventHTTP.Handler
	middleware   middleware.Middleware

	server   *http.Server
	draining *atomic.Bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// WriteTimeout must cover a whole planning run.
	WriteTimeout time.Duration

	EventHandler eventHTTP.Handler
	Middleware   middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		writeTimeout: cfg.WriteTimeout,
		eventHandler: cfg.EventHandler,
		middleware:   cfg.Middleware,
		draining:     &atomic.Bool{},
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventHandler == nil {
		return errors.New("event handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
