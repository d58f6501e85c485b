package model

import "time"

// CourseStatus is the publishing state of a course.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusClosed    CourseStatus = "closed"
)

// Course is a purchasable teaching plan inside a course set.
type Course struct {
	ID          int          `json:"id"`
	CourseSetID int          `json:"course_set_id"`
	ParentID    int          `json:"parent_id"`
	Title       string       `json:"title"`
	About       string       `json:"about"`
	Price       float64      `json:"price"`
	LearnMode   string       `json:"learn_mode"`
	Status      CourseStatus `json:"status"`
	CreatorID   int          `json:"creator_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CopyCourseRequest is the payload for duplicating a course.
type CopyCourseRequest struct {
	Title       string `json:"title" binding:"omitempty,notblank,min=2,max=255"`
	CourseSetID int    `json:"course_set_id" binding:"omitempty,gt=0"`
}

// CopyCourseResponse is returned after a course and its children were copied.
type CopyCourseResponse struct {
	Course   *Course `json:"course"`
	SourceID int     `json:"source_id"`
	CopyID   string  `json:"copy_id"`
}
