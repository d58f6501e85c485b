package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/model"
)

// CourseSetRepository handles course set data access.
type CourseSetRepository struct {
	pool *pgxpool.Pool
}

// NewCourseSetRepository creates a new CourseSetRepository.
func NewCourseSetRepository(pool *pgxpool.Pool) *CourseSetRepository {
	return &CourseSetRepository{pool: pool}
}

// GetByID retrieves a course set by ID. Returns pgx.ErrNoRows when missing.
func (r *CourseSetRepository) GetByID(ctx context.Context, id int) (*model.CourseSet, error) {
	s := &model.CourseSet{}
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, title, subtitle, type, status, cover, min_course_price, max_course_price,
		        creator_id, created_at, updated_at
		 FROM course_sets WHERE id = $1`, id,
	).Scan(&s.ID, &s.Title, &s.Subtitle, &s.Type, &s.Status, &s.Cover, &s.MinCoursePrice,
		&s.MaxCoursePrice, &s.CreatorID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RefreshPriceRange recomputes the min/max course price of a course set
// from its courses. Runs inside the caller's transaction when there is one.
func (r *CourseSetRepository) RefreshPriceRange(ctx context.Context, id int) error {
	_, err := database.Conn(ctx, r.pool).Exec(ctx,
		`UPDATE course_sets cs
		 SET min_course_price = p.min_price, max_course_price = p.max_price, updated_at = NOW()
		 FROM (SELECT COALESCE(MIN(price), 0) AS min_price, COALESCE(MAX(price), 0) AS max_price
		       FROM courses WHERE course_set_id = $1) p
		 WHERE cs.id = $1`, id)
	return err
}
