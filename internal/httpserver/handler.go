package httpserver

import (
	alertHTTP "crisis-alert-srv/internal/alert/delivery/http"
	chatHTTP "crisis-alert-srv/internal/chat/delivery/http"
	"crisis-alert-srv/internal/middleware"
	riskEventHTTP "crisis-alert-srv/internal/riskevent/delivery/http"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "crisis-alert-srv/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.logger, srv.internalKey)

	srv.gin.Use(gin.Logger())
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   srv.cors.AllowedOrigins,
		AllowCredentials: srv.cors.AllowCredentials,
		MaxAge:           srv.cors.MaxAge,
	}))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public API
	api := srv.gin.Group(Api)
	api.Use(mw.Locale())
	chatHTTP.New(srv.chatUC, srv.logger).RegisterRoutes(api)

	// Internal API for operators and the automation platform
	internal := srv.gin.Group(InternalApi)
	internal.Use(mw.InternalKey())
	riskEventHTTP.New(srv.riskEventUC, srv.logger).RegisterRoutes(internal)
	alertHTTP.New(srv.alertUC, srv.logger).RegisterRoutes(internal)
}
