package service

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/stemsi/course-backend/internal/model"
)

type memCache struct {
	data    map[string][]byte
	getErr  error
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

type courseRepoStub struct {
	courses map[int]*model.Course
	calls   int
}

func (r *courseRepoStub) GetByID(_ context.Context, id int) (*model.Course, error) {
	r.calls++
	if c, ok := r.courses[id]; ok {
		dup := *c
		return &dup, nil
	}
	return nil, pgx.ErrNoRows
}

type courseSetRepoStub struct {
	sets  map[int]*model.CourseSet
	calls int
}

func (r *courseSetRepoStub) GetByID(_ context.Context, id int) (*model.CourseSet, error) {
	r.calls++
	if cs, ok := r.sets[id]; ok {
		dup := *cs
		return &dup, nil
	}
	return nil, pgx.ErrNoRows
}

type listStub[T any] struct {
	items map[int][]T
}

func (s listStub[T]) ListByCourseID(_ context.Context, courseID int) ([]T, error) {
	return s.items[courseID], nil
}
