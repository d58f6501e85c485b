package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the commands JSONCache uses on top of a map.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	deleted []string
	err     error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.data, k)
	}
	f.deleted = append(f.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

type record struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

func TestJSONCache_SetGet(t *testing.T) {
	rdb := newFakeRedis()
	c := NewJSONCache(rdb, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "course:1", record{ID: 1, Title: "Go", Price: 9.5}))
	assert.JSONEq(t, `{"id":1,"title":"Go","price":9.5}`, rdb.data["course:1"])
	assert.Equal(t, 5*time.Minute, rdb.ttls["course:1"])

	var got record
	hit, err := c.Get(ctx, "course:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, record{ID: 1, Title: "Go", Price: 9.5}, got)
}

func TestJSONCache_Miss(t *testing.T) {
	c := NewJSONCache(newFakeRedis(), time.Minute)

	var got record
	hit, err := c.Get(context.Background(), "course:2", &got)

	require.NoError(t, err)
	assert.False(t, hit)
}

func TestJSONCache_Errors(t *testing.T) {
	rdb := newFakeRedis()
	c := NewJSONCache(rdb, time.Minute)
	ctx := context.Background()

	rdb.data["course:3"] = "{broken"
	hit, err := c.Get(ctx, "course:3", &record{})
	assert.Error(t, err)
	assert.False(t, hit)

	errDown := errors.New("connection refused")
	rdb.err = errDown
	hit, err = c.Get(ctx, "course:3", &record{})
	assert.ErrorIs(t, err, errDown)
	assert.False(t, hit)
}

func TestJSONCache_Delete(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data["course_set:7"] = `{"id":7}`
	c := NewJSONCache(rdb, time.Minute)

	require.NoError(t, c.Delete(context.Background(), "course_set:7"))
	require.NoError(t, c.Delete(context.Background()))

	assert.NotContains(t, rdb.data, "course_set:7")
	assert.Equal(t, []string{"course_set:7"}, rdb.deleted)
}
