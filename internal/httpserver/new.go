package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"smart-todo/internal/metrics"
	"smart-todo/internal/middleware"
	"smart-todo/internal/task"
	"smart-todo/pkg/log"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db       *sql.DB
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	mw       middleware.Middleware

	// Task domain
	taskUC   task.UseCase
	location *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Infrastructure
	DB         *sql.DB             // pinged by /ready; optional
	Metrics    *metrics.Metrics    // optional
	Gatherer   prometheus.Gatherer // serves /metrics when set
	Middleware middleware.Config

	// Task domain
	TaskUseCase task.UseCase
	Location    *time.Location // zone for task dates in requests and responses
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		metrics:     cfg.Metrics,
		gatherer:    cfg.Gatherer,
		mw:          middleware.New(logger, cfg.Middleware, cfg.Metrics),
		taskUC:      cfg.TaskUseCase,
		location:    cfg.Location,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

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
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
