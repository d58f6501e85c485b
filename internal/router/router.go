package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stemsi/course-backend/internal/config"
	"github.com/stemsi/course-backend/internal/handler"
	"github.com/stemsi/course-backend/internal/middleware"
	"github.com/stemsi/course-backend/internal/model"
	"github.com/stemsi/course-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Course  *handler.CourseHandler
	Product *handler.ProductHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds background work started by middlewares (rate limiter cleanup).
func SetupRouter(
	ctx context.Context,
	auth middleware.TokenValidator,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	authLimiter := middleware.NewRateLimiter(ctx, 30, time.Minute)
	copyLimiter := middleware.NewRateLimiter(ctx, 10, time.Minute)
	authAPI := router.Group("/api/v1/auth")
	{
		authAPI.POST("/admin/login", authLimiter.Middleware(), handlers.Auth.AdminLogin)
		authAPI.GET("/admin/me", middleware.RequireAdminJWT(auth), handlers.Auth.GetAdminProfile)
	}

	// ─── 2. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(auth))
	{
		adminAPI.GET("/courses/:id",
			middleware.RequirePermission(model.PermissionCoursesRead),
			handlers.Course.GetCourse,
		)
		adminAPI.POST("/courses/:id/copy",
			middleware.RequirePermission(model.PermissionCoursesCopy),
			copyLimiter.Middleware(),
			handlers.Course.CopyCourse,
		)
	}

	// ─── 3. Orders Group (JWT) ─────────────────────────────────────────
	ordersAPI := router.Group("/api/v1/orders")
	ordersAPI.Use(middleware.RequireAdminJWT(auth))
	{
		ordersAPI.GET("/products/:type/:target_id",
			middleware.RequirePermission(model.PermissionOrdersPreview),
			handlers.Product.GetProduct,
		)
	}

	return router
}
