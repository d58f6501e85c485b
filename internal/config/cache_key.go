package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseKey returns the cache key for a single course record
func (r *CacheKeyStruct) CourseKey(courseID int) string {
	return fmt.Sprintf("course:%d", courseID)
}

// CourseSetKey returns the cache key for a single course set record
func (r *CacheKeyStruct) CourseSetKey(courseSetID int) string {
	return fmt.Sprintf("course_set:%d", courseSetID)
}

var CacheKey = NewCacheKeyStruct()
