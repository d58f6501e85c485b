package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/model"
)

// ChapterRepository handles course outline data access.
type ChapterRepository struct {
	pool *pgxpool.Pool
}

// NewChapterRepository creates a new ChapterRepository.
func NewChapterRepository(pool *pgxpool.Pool) *ChapterRepository {
	return &ChapterRepository{pool: pool}
}

// ListByCourseID returns the outline of a course ordered by seq.
func (r *ChapterRepository) ListByCourseID(ctx context.Context, courseID int) ([]model.CourseChapter, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT id, course_id, type, number, seq, title, created_at
		 FROM course_chapters WHERE course_id = $1 ORDER BY seq ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []model.CourseChapter
	for rows.Next() {
		var ch model.CourseChapter
		if err := rows.Scan(&ch.ID, &ch.CourseID, &ch.Type, &ch.Number, &ch.Seq, &ch.Title, &ch.CreatedAt); err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}
	return chapters, rows.Err()
}

// Create inserts one outline node.
func (r *ChapterRepository) Create(ctx context.Context, ch *model.CourseChapter) error {
	return database.Conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO course_chapters (course_id, type, number, seq, title)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		ch.CourseID, ch.Type, ch.Number, ch.Seq, ch.Title,
	).Scan(&ch.ID, &ch.CreatedAt)
}
