package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/config"
	"github.com/stemsi/course-backend/internal/model"
)

// CourseReader loads courses from storage.
type CourseReader interface {
	GetByID(ctx context.Context, id int) (*model.Course, error)
}

// ChapterReader loads course outlines.
type ChapterReader interface {
	ListByCourseID(ctx context.Context, courseID int) ([]model.CourseChapter, error)
}

// TaskReader loads course tasks.
type TaskReader interface {
	ListByCourseID(ctx context.Context, courseID int) ([]model.CourseTask, error)
}

// CourseService is the course lookup service.
type CourseService struct {
	courseRepo  CourseReader
	chapterRepo ChapterReader
	taskRepo    TaskReader
	cache       Cache
	log         zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo CourseReader, chapterRepo ChapterReader, taskRepo TaskReader, cache Cache, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo:  courseRepo,
		chapterRepo: chapterRepo,
		taskRepo:    taskRepo,
		cache:       cache,
		log:         log.With().Str("component", "course_service").Logger(),
	}
}

// GetCourse returns a course, serving from cache when possible.
// Returns ErrCourseNotFound when the course does not exist.
func (s *CourseService) GetCourse(ctx context.Context, id int) (*model.Course, error) {
	key := config.CacheKey.CourseKey(id)

	var cached model.Course
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn().Err(err).Int("course_id", id).Msg("Course cache read failed")
	}
	if hit {
		return &cached, nil
	}

	c, err := s.GetCourseFresh(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, c); err != nil {
		s.log.Warn().Err(err).Int("course_id", id).Msg("Course cache write failed")
	}
	return c, nil
}

// GetCourseFresh reads a course from the database, bypassing the cache.
func (s *CourseService) GetCourseFresh(ctx context.Context, id int) (*model.Course, error) {
	c, err := s.courseRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	return c, err
}

// ListChapters returns the outline of a course.
func (s *CourseService) ListChapters(ctx context.Context, courseID int) ([]model.CourseChapter, error) {
	return s.chapterRepo.ListByCourseID(ctx, courseID)
}

// ListTasks returns the tasks of a course.
func (s *CourseService) ListTasks(ctx context.Context, courseID int) ([]model.CourseTask, error) {
	return s.taskRepo.ListByCourseID(ctx, courseID)
}
