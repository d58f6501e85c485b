package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/copier"
	"github.com/stemsi/course-backend/internal/coursecopy"
	"github.com/stemsi/course-backend/internal/logger"
	"github.com/stemsi/course-backend/internal/model"
)

// CourseCopier runs the course copy chain.
type CourseCopier interface {
	Copy(ctx context.Context, source model.Course, cfg copier.Config) (*model.Course, error)
}

// CopyOptions are the caller-facing knobs of a course copy.
type CopyOptions struct {
	Title       string
	CourseSetID int
	CreatorID   int
}

func (o CopyOptions) config() copier.Config {
	cfg := copier.Config{}
	if o.Title != "" {
		cfg[coursecopy.ConfigTitle] = o.Title
	}
	if o.CourseSetID > 0 {
		cfg[coursecopy.ConfigCourseSetID] = o.CourseSetID
	}
	if o.CreatorID > 0 {
		cfg[coursecopy.ConfigCreatorID] = o.CreatorID
	}
	return cfg
}

// CourseCopyService duplicates courses.
type CourseCopyService struct {
	courses    *CourseService
	courseSets *CourseSetService
	copier     CourseCopier
	log        zerolog.Logger
}

// NewCourseCopyService creates a new CourseCopyService.
func NewCourseCopyService(courses *CourseService, courseSets *CourseSetService, copier CourseCopier, log zerolog.Logger) *CourseCopyService {
	return &CourseCopyService{
		courses:    courses,
		courseSets: courseSets,
		copier:     copier,
		log:        log.With().Str("component", "course_copy_service").Logger(),
	}
}

// CopyCourse copies a course with its chapters and tasks in one transaction.
func (s *CourseCopyService) CopyCourse(ctx context.Context, courseID int, opts CopyOptions) (*model.CopyCourseResponse, error) {
	source, err := s.courses.GetCourseFresh(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if opts.CourseSetID > 0 && opts.CourseSetID != source.CourseSetID {
		if _, err := s.courseSets.GetCourseSet(ctx, opts.CourseSetID); err != nil {
			return nil, err
		}
	}

	copyID := uuid.New().String()
	log := s.log.With().
		Str("copy_id", copyID).
		Str("request_id", logger.RequestID(ctx)).
		Int("source_id", courseID).
		Logger()

	dup, err := s.copier.Copy(ctx, *source, opts.config())
	if err != nil {
		log.Error().Err(err).Msg("Course copy failed")
		return nil, err
	}

	// The target course set now has another course; its cached price range is stale.
	s.courseSets.Invalidate(ctx, dup.CourseSetID)

	log.Info().Int("course_id", dup.ID).Int("course_set_id", dup.CourseSetID).Msg("Course copied")

	return &model.CopyCourseResponse{
		Course:   dup,
		SourceID: courseID,
		CopyID:   copyID,
	}, nil
}
