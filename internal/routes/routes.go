package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	"blogapi/internal/monitoring"
	"blogapi/internal/utils"
)

// Setup builds the full router. The routing logic is isolated here so tests
// can exercise the exact production route table.
func Setup(
	auth *handlers.AuthHandler,
	blogs *handlers.BlogHandler,
	system *handlers.SystemHandler,
	tokens *utils.TokenManager,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		monitoring.RequestMetricsMiddleware(),
		monitoring.InstrumentHandler(),
	)

	router.GET("/health", system.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/test", system.Test)
	api.GET("/status", system.Status)
	api.GET("/monitor/snapshot", system.MonitorSnapshot)

	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)
	api.POST("/logout", auth.Logout)

	protected := api.Group("/blogs")
	protected.Use(middleware.Auth(tokens))
	protected.GET("", blogs.List)
	protected.POST("", blogs.Create)
	protected.GET("/:id", blogs.Get)
	protected.PUT("/:id", blogs.Update)
	protected.DELETE("/:id", blogs.Delete)

	return router
}
