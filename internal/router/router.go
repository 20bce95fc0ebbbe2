package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"charges/internal/domain"
	"charges/internal/handler"
	"charges/internal/middleware"
	"charges/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	logger *zap.Logger,
	authSvc service.AuthService,
	chargeH *handler.ChargeHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Charge documents are submitted by charge owners only.
	charges := v1.Group("/charges")
	charges.Use(middleware.AuthMiddleware(authSvc))
	charges.Use(middleware.RequireRole(domain.RoleGridAccessProvider, domain.RoleSystemOperator))
	charges.POST("/information", chargeH.SubmitInformation)
	charges.POST("/prices", chargeH.SubmitPrices)

	return r
}
