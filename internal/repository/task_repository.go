package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/model"
)

// TaskRepository handles course task data access.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// ListByCourseID returns the tasks of a course ordered by seq.
func (r *TaskRepository) ListByCourseID(ctx context.Context, courseID int) ([]model.CourseTask, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT id, course_id, seq, title, type, media_url, length, is_free, status, created_at
		 FROM course_tasks WHERE course_id = $1 ORDER BY seq ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.CourseTask
	for rows.Next() {
		var t model.CourseTask
		if err := rows.Scan(&t.ID, &t.CourseID, &t.Seq, &t.Title, &t.Type, &t.MediaURL,
			&t.Length, &t.IsFree, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create inserts one task.
func (r *TaskRepository) Create(ctx context.Context, t *model.CourseTask) error {
	return database.Conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO course_tasks (course_id, seq, title, type, media_url, length, is_free, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		t.CourseID, t.Seq, t.Title, t.Type, t.MediaURL, t.Length, t.IsFree, t.Status,
	).Scan(&t.ID, &t.CreatedAt)
}
