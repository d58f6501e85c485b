package model

import "time"

// ChapterType distinguishes the levels of a course outline.
type ChapterType string

const (
	ChapterTypeChapter ChapterType = "chapter"
	ChapterTypeUnit    ChapterType = "unit"
	ChapterTypeLesson  ChapterType = "lesson"
)

// CourseChapter is one node of a course outline.
type CourseChapter struct {
	ID        int         `json:"id"`
	CourseID  int         `json:"course_id"`
	Type      ChapterType `json:"type"`
	Number    int         `json:"number"`
	Seq       int         `json:"seq"`
	Title     string      `json:"title"`
	CreatedAt time.Time   `json:"created_at"`
}
