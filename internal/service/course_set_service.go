package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/config"
	"github.com/stemsi/course-backend/internal/model"
)

// CourseSetReader loads course sets from storage.
type CourseSetReader interface {
	GetByID(ctx context.Context, id int) (*model.CourseSet, error)
}

// CourseSetService is the course set lookup service.
type CourseSetService struct {
	courseSetRepo CourseSetReader
	cache         Cache
	log           zerolog.Logger
}

// NewCourseSetService creates a new CourseSetService.
func NewCourseSetService(courseSetRepo CourseSetReader, cache Cache, log zerolog.Logger) *CourseSetService {
	return &CourseSetService{
		courseSetRepo: courseSetRepo,
		cache:         cache,
		log:           log.With().Str("component", "course_set_service").Logger(),
	}
}

// GetCourseSet returns a course set, serving from cache when possible.
// Returns ErrCourseSetNotFound when the course set does not exist.
func (s *CourseSetService) GetCourseSet(ctx context.Context, id int) (*model.CourseSet, error) {
	key := config.CacheKey.CourseSetKey(id)

	var cached model.CourseSet
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn().Err(err).Int("course_set_id", id).Msg("Course set cache read failed")
	}
	if hit {
		return &cached, nil
	}

	cs, err := s.courseSetRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCourseSetNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, cs); err != nil {
		s.log.Warn().Err(err).Int("course_set_id", id).Msg("Course set cache write failed")
	}
	return cs, nil
}

// Invalidate drops the cached copy of a course set.
func (s *CourseSetService) Invalidate(ctx context.Context, id int) {
	if err := s.cache.Delete(ctx, config.CacheKey.CourseSetKey(id)); err != nil {
		s.log.Warn().Err(err).Int("course_set_id", id).Msg("Course set cache invalidation failed")
	}
}
