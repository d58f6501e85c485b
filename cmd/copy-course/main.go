package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/stemsi/course-backend/internal/cache"
	"github.com/stemsi/course-backend/internal/config"
	"github.com/stemsi/course-backend/internal/coursecopy"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/logger"
	"github.com/stemsi/course-backend/internal/repository"
	"github.com/stemsi/course-backend/internal/service"
)

func main() {
	var (
		courseID    int
		title       string
		courseSetID int
	)
	flag.IntVar(&courseID, "course", 0, "ID of the course to copy")
	flag.StringVar(&title, "title", "", "Title of the copy (defaults to the source title)")
	flag.IntVar(&courseSetID, "course-set", 0, "Target course set (defaults to the source course set)")
	flag.Parse()

	if courseID <= 0 {
		fmt.Println("Usage: copy-course -course <id> [-title <title>] [-course-set <id>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	copyLog, copyLogFile := logger.NewServiceLog("EntityCopy", logger.FileOptions{
		Path:       cfg.ServiceLogPath(),
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	defer copyLogFile.Close()

	ctx := context.Background()

	// ─── Connect ───────────────────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	recordCache := cache.NewJSONCache(rdb, cfg.CourseCacheTTL)
	courseRepo := repository.NewCourseRepository(pool)
	courseSetRepo := repository.NewCourseSetRepository(pool)
	chapterRepo := repository.NewChapterRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	courseCopier := coursecopy.NewCourseCopier(database.NewPgxTransactor(pool), coursecopy.Stores{
		Courses:    courseRepo,
		CourseSets: courseSetRepo,
		Chapters:   chapterRepo,
		Tasks:      taskRepo,
	}, copyLog)

	courseService := service.NewCourseService(courseRepo, chapterRepo, taskRepo, recordCache, log)
	courseSetService := service.NewCourseSetService(courseSetRepo, recordCache, log)
	copyService := service.NewCourseCopyService(courseService, courseSetService, courseCopier, log)

	// ─── Logic ─────────────────────────────────────────────────────────
	res, err := copyService.CopyCourse(ctx, courseID, service.CopyOptions{Title: title, CourseSetID: courseSetID})
	if err != nil {
		log.Fatal().Err(err).Int("course_id", courseID).Msg("Failed to copy course")
	}

	fmt.Printf("\nSuccess! Course %d copied to '%s' (ID: %d, course set %d, copy %s)\n",
		res.SourceID, res.Course.Title, res.Course.ID, res.Course.CourseSetID, res.CopyID)
}
