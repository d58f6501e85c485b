package coursecopy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/course-backend/internal/copier"
	"github.com/stemsi/course-backend/internal/coursecopy"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/model"
)

// memDB is an in-memory stand-in for the course tables. Begin snapshots the
// tables and Rollback restores the snapshot.
type memDB struct {
	courses   []model.Course
	chapters  []model.CourseChapter
	tasks     []model.CourseTask
	refreshed []int
	nextID    int

	failTaskCreate error
	commits        int
	rollbacks      int
}

type snapshot struct {
	courses  []model.Course
	chapters []model.CourseChapter
	tasks    []model.CourseTask
}

type memTx struct {
	db   *memDB
	snap snapshot
}

func (t *memTx) Commit(context.Context) error {
	t.db.commits++
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	t.db.rollbacks++
	t.db.courses = t.snap.courses
	t.db.chapters = t.snap.chapters
	t.db.tasks = t.snap.tasks
	return nil
}

func (db *memDB) Begin(ctx context.Context) (context.Context, database.Tx, error) {
	tx := &memTx{db: db, snap: snapshot{
		courses:  append([]model.Course(nil), db.courses...),
		chapters: append([]model.CourseChapter(nil), db.chapters...),
		tasks:    append([]model.CourseTask(nil), db.tasks...),
	}}
	return database.WithTx(ctx, tx), tx, nil
}

func (db *memDB) id() int {
	db.nextID++
	return db.nextID
}

type courseStore struct{ db *memDB }

func (s courseStore) Create(_ context.Context, c *model.Course) error {
	c.ID = s.db.id()
	s.db.courses = append(s.db.courses, *c)
	return nil
}

type courseSetStore struct{ db *memDB }

func (s courseSetStore) RefreshPriceRange(_ context.Context, id int) error {
	s.db.refreshed = append(s.db.refreshed, id)
	return nil
}

type chapterStore struct{ db *memDB }

func (s chapterStore) ListByCourseID(_ context.Context, courseID int) ([]model.CourseChapter, error) {
	var out []model.CourseChapter
	for _, ch := range s.db.chapters {
		if ch.CourseID == courseID {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (s chapterStore) Create(_ context.Context, ch *model.CourseChapter) error {
	ch.ID = s.db.id()
	s.db.chapters = append(s.db.chapters, *ch)
	return nil
}

type taskStore struct{ db *memDB }

func (s taskStore) ListByCourseID(_ context.Context, courseID int) ([]model.CourseTask, error) {
	var out []model.CourseTask
	for _, t := range s.db.tasks {
		if t.CourseID == courseID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s taskStore) Create(_ context.Context, t *model.CourseTask) error {
	if s.db.failTaskCreate != nil {
		return s.db.failTaskCreate
	}
	t.ID = s.db.id()
	s.db.tasks = append(s.db.tasks, *t)
	return nil
}

func seed() (*memDB, model.Course) {
	src := model.Course{
		ID: 42, CourseSetID: 7, Title: "Go Fundamentals", About: "intro",
		Price: 99.5, LearnMode: "lockMode", Status: model.CourseStatusPublished, CreatorID: 3,
	}
	db := &memDB{
		nextID:  100,
		courses: []model.Course{src},
		chapters: []model.CourseChapter{
			{ID: 1, CourseID: 42, Type: model.ChapterTypeChapter, Number: 1, Seq: 1, Title: "Basics"},
			{ID: 2, CourseID: 42, Type: model.ChapterTypeUnit, Number: 1, Seq: 2, Title: "Types"},
			{ID: 3, CourseID: 9, Type: model.ChapterTypeChapter, Number: 1, Seq: 1, Title: "Other course"},
		},
		tasks: []model.CourseTask{
			{ID: 10, CourseID: 42, Seq: 1, Title: "Welcome", Type: "video", Length: 120, IsFree: true, Status: model.TaskStatusPublished},
		},
	}
	return db, src
}

func newCopier(db *memDB) *coursecopy.CourseCopier {
	return coursecopy.NewCourseCopier(db, coursecopy.Stores{
		Courses:    courseStore{db},
		CourseSets: courseSetStore{db},
		Chapters:   chapterStore{db},
		Tasks:      taskStore{db},
	}, zerolog.Nop())
}

func TestCourseCopier_CopiesCourseChaptersAndTasks(t *testing.T) {
	db, src := seed()

	dup, err := newCopier(db).Copy(context.Background(), src, copier.Config{coursecopy.ConfigTitle: "Go Fundamentals (2027)"})
	require.NoError(t, err)

	assert.Equal(t, 101, dup.ID)
	assert.Equal(t, 42, dup.ParentID)
	assert.Equal(t, 7, dup.CourseSetID)
	assert.Equal(t, "Go Fundamentals (2027)", dup.Title)
	assert.Equal(t, 99.5, dup.Price)
	assert.Equal(t, 3, dup.CreatorID)
	assert.Equal(t, model.CourseStatusDraft, dup.Status)
	assert.Equal(t, []int{7}, db.refreshed)

	copied, _ := chapterStore{db}.ListByCourseID(context.Background(), dup.ID)
	require.Len(t, copied, 2)
	assert.Equal(t, "Basics", copied[0].Title)
	assert.Equal(t, model.ChapterTypeUnit, copied[1].Type)

	tasks, _ := taskStore{db}.ListByCourseID(context.Background(), dup.ID)
	require.Len(t, tasks, 1)
	assert.Equal(t, model.TaskStatusCreated, tasks[0].Status)
	assert.True(t, tasks[0].IsFree)

	assert.Equal(t, 1, db.commits)
	assert.Zero(t, db.rollbacks)
}

func TestCourseCopier_DefaultsAndTargetCourseSet(t *testing.T) {
	db, src := seed()

	dup, err := newCopier(db).Copy(context.Background(), src, copier.Config{
		coursecopy.ConfigCourseSetID: 8,
		coursecopy.ConfigCreatorID:   5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Go Fundamentals", dup.Title)
	assert.Equal(t, 8, dup.CourseSetID)
	assert.Equal(t, 5, dup.CreatorID)
	assert.Equal(t, []int{8}, db.refreshed)
}

func TestCourseCopier_TaskFailureRollsBackEverything(t *testing.T) {
	db, src := seed()
	errDisk := errors.New("disk full")
	db.failTaskCreate = errDisk

	_, err := newCopier(db).Copy(context.Background(), src, nil)

	assert.ErrorIs(t, err, errDisk)
	assert.Len(t, db.courses, 1, "the new course is gone after rollback")
	assert.Len(t, db.chapters, 3, "copied chapters are gone after rollback")
	assert.Equal(t, 1, db.rollbacks)
	assert.Zero(t, db.commits)
}

func TestChildStep_WithoutParent(t *testing.T) {
	db, src := seed()
	chapters := copier.New[model.Course, int]("course_chapter", db, &coursecopy.ChapterStep{}, zerolog.Nop())

	_, err := chapters.Copy(context.Background(), src, nil)

	assert.ErrorIs(t, err, coursecopy.ErrNoParentCourse)
	assert.Equal(t, 1, db.rollbacks)
}
