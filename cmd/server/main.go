package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/cache"
	"github.com/stemsi/course-backend/internal/config"
	"github.com/stemsi/course-backend/internal/coursecopy"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/handler"
	"github.com/stemsi/course-backend/internal/logger"
	"github.com/stemsi/course-backend/internal/product"
	"github.com/stemsi/course-backend/internal/repository"
	"github.com/stemsi/course-backend/internal/router"
	"github.com/stemsi/course-backend/internal/service"
	"github.com/stemsi/course-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Course Backend")

	copyLog, copyLogFile := logger.NewServiceLog("EntityCopy", logger.FileOptions{
		Path:       cfg.ServiceLogPath(),
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	defer copyLogFile.Close()

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	recordCache := cache.NewJSONCache(rdb, cfg.CourseCacheTTL)

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	courseSetRepo := repository.NewCourseSetRepository(pool)
	chapterRepo := repository.NewChapterRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	// ─── Initialize Copy Chain ─────────────────────────────────────────
	courseCopier := coursecopy.NewCourseCopier(database.NewPgxTransactor(pool), coursecopy.Stores{
		Courses:    courseRepo,
		CourseSets: courseSetRepo,
		Chapters:   chapterRepo,
		Tasks:      taskRepo,
	}, copyLog)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, roleRepo)
	courseService := service.NewCourseService(courseRepo, chapterRepo, taskRepo, recordCache, log)
	courseSetService := service.NewCourseSetService(courseSetRepo, recordCache, log)
	courseCopyService := service.NewCourseCopyService(courseService, courseSetService, courseCopier, log)
	orderProductService := service.NewOrderProductService(product.NewFactory(courseService, courseSetService), log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService, adminService),
		Course:  handler.NewCourseHandler(courseService, courseCopyService, log),
		Product: handler.NewProductHandler(orderProductService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// Copy chains in flight finish or roll back before the pool closes.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
