package model

import "time"

// CourseSet groups the plans (courses) sold under one catalog entry.
type CourseSet struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	Cover          string    `json:"cover"`
	MinCoursePrice float64   `json:"min_course_price"`
	MaxCoursePrice float64   `json:"max_course_price"`
	CreatorID      int       `json:"creator_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
