package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gstbooks/internal/config"
	"gstbooks/internal/domain"
	"gstbooks/internal/handler"
	"gstbooks/internal/middleware"
	"gstbooks/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	customerH *handler.CustomerHandler,
	documentH *handler.DocumentHandler,
	calculationH *handler.CalculationHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Customer routes
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", customerH.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), customerH.Delete)

	// Document routes
	documents := protected.Group("/documents")
	documents.POST("", documentH.Create)
	documents.GET("", documentH.List)
	documents.GET("/:id", documentH.GetByID)
	documents.PATCH("/:id/status", documentH.UpdateStatus)
	documents.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), documentH.Delete)

	// Stateless calculation routes
	calculations := protected.Group("/calculations")
	calculations.POST("/preview", calculationH.Preview)
	calculations.POST("/amount-in-words", calculationH.AmountInWords)
	calculations.POST("/estimate-split", calculationH.EstimateSplit)
	calculations.POST("/validate-identifiers", calculationH.ValidateIdentifiers)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/register", reportH.ExportRegister)

	return r
}
