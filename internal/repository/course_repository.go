package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/model"
)

const courseColumns = `id, course_set_id, parent_id, title, about, price, learn_mode,
	status, creator_id, created_at, updated_at`

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetByID retrieves a course by ID. Returns pgx.ErrNoRows when missing.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.CourseSetID, &c.ParentID, &c.Title, &c.About, &c.Price, &c.LearnMode,
		&c.Status, &c.CreatorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new course and fills its generated fields.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return database.Conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO courses (course_set_id, parent_id, title, about, price, learn_mode, status, creator_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		c.CourseSetID, c.ParentID, c.Title, c.About, c.Price, c.LearnMode, c.Status, c.CreatorID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}
