package v1

import (
	"net/http"

	"seo-audit-backend/config"
	"seo-audit-backend/internal/delivery/http/middleware"
	"seo-audit-backend/internal/delivery/http/response"
	"seo-audit-backend/internal/domain"
	"seo-audit-backend/internal/usecase"
	"seo-audit-backend/pkg/apperror"
	"seo-audit-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	HealthUC     usecase.HealthUsecase
	Config       *config.Config
	Logger       *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURLs)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.HTTPMetrics())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.BodySizeLimit(deps.Config.MaxRequestBodyBytes))
	r.Use(middleware.ErrorHandler(deps.Logger))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Not Found"))
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	NewSubmissionHandler(v1, deps.SubmissionUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
