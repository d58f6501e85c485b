// Package coursecopy holds the copy steps that duplicate a course together
// with its outline and tasks.
package coursecopy

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/copier"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/model"
)

// Config keys understood by the course chain.
const (
	ConfigTitle       = "title"
	ConfigCourseSetID = "courseSetId"
	ConfigCreatorID   = "creatorId"
)

// ErrNoParentCourse is returned by a child step run outside a course chain.
var ErrNoParentCourse = errors.New("copy chain has no parent course")

// CourseStore persists courses.
type CourseStore interface {
	Create(ctx context.Context, c *model.Course) error
}

// CourseSetStore maintains course set aggregates.
type CourseSetStore interface {
	RefreshPriceRange(ctx context.Context, id int) error
}

// ChapterStore reads and writes course outlines.
type ChapterStore interface {
	ListByCourseID(ctx context.Context, courseID int) ([]model.CourseChapter, error)
	Create(ctx context.Context, ch *model.CourseChapter) error
}

// TaskStore reads and writes course tasks.
type TaskStore interface {
	ListByCourseID(ctx context.Context, courseID int) ([]model.CourseTask, error)
	Create(ctx context.Context, t *model.CourseTask) error
}

// Stores groups the persistence dependencies of the course chain.
type Stores struct {
	Courses    CourseStore
	CourseSets CourseSetStore
	Chapters   ChapterStore
	Tasks      TaskStore
}

// CourseCopier is the root of the course copy chain.
type CourseCopier = copier.Copier[model.Course, *model.Course]

// NewCourseCopier builds course → [chapters, tasks].
func NewCourseCopier(tx database.Transactor, stores Stores, log zerolog.Logger) *CourseCopier {
	chapters := copier.New[model.Course, int]("course_chapter", tx, &ChapterStep{chapters: stores.Chapters}, log)
	tasks := copier.New[model.Course, int]("course_task", tx, &TaskStep{tasks: stores.Tasks}, log)

	return copier.New[model.Course, *model.Course]("course", tx,
		NewCourseStep(stores.Courses, stores.CourseSets), log, chapters, tasks)
}

func parentCourse(ctx context.Context) (*model.Course, error) {
	parent, ok := copier.Parent[*model.Course](ctx)
	if !ok || parent == nil {
		return nil, ErrNoParentCourse
	}
	return parent, nil
}
