package coursecopy

import (
	"context"
	"fmt"

	"github.com/stemsi/course-backend/internal/copier"
	"github.com/stemsi/course-backend/internal/model"
)

// TaskStep copies the tasks of the source course. Copies start unpublished.
type TaskStep struct {
	tasks TaskStore
}

// CopyEntity implements copier.Step and returns the number of copied tasks.
func (s *TaskStep) CopyEntity(ctx context.Context, source model.Course, _ copier.Config) (int, error) {
	parent, err := parentCourse(ctx)
	if err != nil {
		return 0, err
	}

	tasks, err := s.tasks.ListByCourseID(ctx, source.ID)
	if err != nil {
		return 0, fmt.Errorf("list tasks of course %d: %w", source.ID, err)
	}

	for _, t := range tasks {
		dup := &model.CourseTask{
			CourseID: parent.ID,
			Seq:      t.Seq,
			Title:    t.Title,
			Type:     t.Type,
			MediaURL: t.MediaURL,
			Length:   t.Length,
			IsFree:   t.IsFree,
			Status:   model.TaskStatusCreated,
		}
		if err := s.tasks.Create(ctx, dup); err != nil {
			return 0, fmt.Errorf("copy task %d: %w", t.ID, err)
		}
	}
	return len(tasks), nil
}
