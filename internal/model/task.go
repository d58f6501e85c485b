package model

import "time"

// TaskStatus is the publishing state of a course task.
type TaskStatus string

const (
	TaskStatusCreated   TaskStatus = "created"
	TaskStatusPublished TaskStatus = "published"
)

// CourseTask is a learning activity (video, text, exercise) of a course.
type CourseTask struct {
	ID        int        `json:"id"`
	CourseID  int        `json:"course_id"`
	Seq       int        `json:"seq"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	MediaURL  string     `json:"media_url,omitempty"`
	Length    int        `json:"length"`
	IsFree    bool       `json:"is_free"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
