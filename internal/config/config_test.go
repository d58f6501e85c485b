package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("COURSE_CACHE_TTL_SECONDS", "")
	t.Setenv("LOG_DIR", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 5*time.Minute, cfg.CourseCacheTTL)
	assert.Equal(t, "logs/service.log", cfg.ServiceLogPath())
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("COURSE_CACHE_TTL_SECONDS", "not-a-number")
	t.Setenv("LOG_DIR", "/var/log/course")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 5*time.Minute, cfg.CourseCacheTTL, "invalid ints fall back to the default")
	assert.Equal(t, "/var/log/course/service.log", cfg.ServiceLogPath())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "course:42", CacheKey.CourseKey(42))
	assert.Equal(t, "course_set:7", CacheKey.CourseSetKey(7))
}
