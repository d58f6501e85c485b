package coursecopy

import (
	"context"
	"fmt"

	"github.com/stemsi/course-backend/internal/copier"
	"github.com/stemsi/course-backend/internal/model"
)

// ChapterStep copies the outline of the source course into the new course.
type ChapterStep struct {
	chapters ChapterStore
}

// CopyEntity implements copier.Step and returns the number of copied nodes.
func (s *ChapterStep) CopyEntity(ctx context.Context, source model.Course, _ copier.Config) (int, error) {
	parent, err := parentCourse(ctx)
	if err != nil {
		return 0, err
	}

	chapters, err := s.chapters.ListByCourseID(ctx, source.ID)
	if err != nil {
		return 0, fmt.Errorf("list chapters of course %d: %w", source.ID, err)
	}

	for _, ch := range chapters {
		dup := &model.CourseChapter{
			CourseID: parent.ID,
			Type:     ch.Type,
			Number:   ch.Number,
			Seq:      ch.Seq,
			Title:    ch.Title,
		}
		if err := s.chapters.Create(ctx, dup); err != nil {
			return 0, fmt.Errorf("copy chapter %d: %w", ch.ID, err)
		}
	}
	return len(chapters), nil
}
