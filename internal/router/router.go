package router

import (
	"github.com/gin-gonic/gin"

	"appeals/internal/config"
	"appeals/internal/handler"
	"appeals/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	appealH *handler.AppealHandler,
	payerH *handler.PayerHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	appeals := v1.Group("/appeals")
	appeals.POST("/upload", appealH.Upload)
	appeals.POST("/text", appealH.Text)
	appeals.GET("", appealH.List)
	appeals.GET("/:id", appealH.GetByID)
	appeals.PATCH("/:id/status", appealH.UpdateStatus)
	appeals.POST("/:id/send", appealH.Send)

	payers := v1.Group("/payers")
	payers.GET("", payerH.List)
	payers.GET("/:name/requirements", payerH.Requirements)

	return r
}
