package httpserver

import (
	"database/sql"
	"errors"

	"crisis-alert-srv/config"
	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/chat"
	"crisis-alert-srv/internal/metrics"
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/pkg/log"
	pkgRedis "crisis-alert-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() wires dependencies, validates them and maps the routes.
// Run() (in httpserver.go) serves until a shutdown signal arrives.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	host        string
	port        int
	environment string
	internalKey string
	cors        config.CORSConfig

	// Domain use cases
	chatUC      chat.UseCase
	alertUC     alert.UseCase
	riskEventUC riskevent.UseCase

	// External services, both optional
	db    *sql.DB
	redis pkgRedis.IRedis

	metrics *metrics.Metrics
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Auth & security
	InternalKey string
	CORS        config.CORSConfig

	// Domain use cases
	ChatUC      chat.UseCase
	AlertUC     alert.UseCase
	RiskEventUC riskevent.UseCase

	// External services
	DB      *sql.DB
	Redis   pkgRedis.IRedis
	Metrics *metrics.Metrics
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start serving. Use (*HTTPServer).Run() for that.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		// Server configuration
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		environment: cfg.Environment,
		internalKey: cfg.InternalKey,
		cors:        cfg.CORS,

		// Domain use cases
		chatUC:      cfg.ChatUC,
		alertUC:     cfg.AlertUC,
		riskEventUC: cfg.RiskEventUC,

		// External services
		db:      cfg.DB,
		redis:   cfg.Redis,
		metrics: cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port <= 0 {
		return errors.New("port is required")
	}
	if s.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if s.alertUC == nil {
		return errors.New("alert usecase is required")
	}
	if s.riskEventUC == nil {
		return errors.New("risk event usecase is required")
	}

	return nil
}

// Handler exposes the routed engine.
func (s *HTTPServer) Handler() *gin.Engine {
	return s.gin
}
