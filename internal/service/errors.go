package service

import (
	"context"
	"errors"
)

// Lookup errors returned by the course services.
var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrCourseSetNotFound = errors.New("course set not found")
)

// Cache is the read-through cache used for course lookups.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, keys ...string) error
}
