package coursecopy

import (
	"context"
	"fmt"

	"github.com/stemsi/course-backend/internal/copier"
	"github.com/stemsi/course-backend/internal/model"
)

// CourseStep inserts the new course row.
//
// The copy lands in the source's course set unless courseSetId is given, takes
// its title from the title key (source title otherwise) and starts as a draft.
type CourseStep struct {
	courses    CourseStore
	courseSets CourseSetStore
}

// NewCourseStep creates a CourseStep.
func NewCourseStep(courses CourseStore, courseSets CourseSetStore) *CourseStep {
	return &CourseStep{courses: courses, courseSets: courseSets}
}

// CopyEntity implements copier.Step.
func (s *CourseStep) CopyEntity(ctx context.Context, source model.Course, cfg copier.Config) (*model.Course, error) {
	title := cfg.String(ConfigTitle)
	if title == "" {
		title = source.Title
	}
	courseSetID := cfg.Int(ConfigCourseSetID)
	if courseSetID == 0 {
		courseSetID = source.CourseSetID
	}
	creatorID := cfg.Int(ConfigCreatorID)
	if creatorID == 0 {
		creatorID = source.CreatorID
	}

	c := &model.Course{
		CourseSetID: courseSetID,
		ParentID:    source.ID,
		Title:       title,
		About:       source.About,
		Price:       source.Price,
		LearnMode:   source.LearnMode,
		Status:      model.CourseStatusDraft,
		CreatorID:   creatorID,
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create course copy of %d: %w", source.ID, err)
	}

	if err := s.courseSets.RefreshPriceRange(ctx, courseSetID); err != nil {
		return nil, fmt.Errorf("refresh price range of course set %d: %w", courseSetID, err)
	}

	return c, nil
}
