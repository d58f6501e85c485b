package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/course-backend/internal/middleware"
	"github.com/stemsi/course-backend/internal/model"
	"github.com/stemsi/course-backend/internal/product"
	"github.com/stemsi/course-backend/internal/response"
	"github.com/stemsi/course-backend/internal/service"
	"github.com/stemsi/course-backend/internal/validator"
)

type courseReaderStub struct{}

func (courseReaderStub) GetCourse(_ context.Context, id int) (*model.Course, error) {
	if id != 42 {
		return nil, service.ErrCourseNotFound
	}
	return &model.Course{ID: 42, CourseSetID: 7, Title: "Go"}, nil
}

func (courseReaderStub) ListChapters(context.Context, int) ([]model.CourseChapter, error) {
	return nil, nil
}

func (courseReaderStub) ListTasks(context.Context, int) ([]model.CourseTask, error) {
	return []model.CourseTask{{ID: 1, CourseID: 42, Title: "Intro"}}, nil
}

type duplicatorStub struct {
	gotID   int
	gotOpts service.CopyOptions
	err     error
}

func (d *duplicatorStub) CopyCourse(_ context.Context, courseID int, opts service.CopyOptions) (*model.CopyCourseResponse, error) {
	d.gotID, d.gotOpts = courseID, opts
	if d.err != nil {
		return nil, d.err
	}
	return &model.CopyCourseResponse{Course: &model.Course{ID: 100, ParentID: courseID}, SourceID: courseID, CopyID: "c-1"}, nil
}

type builderStub struct {
	gotParams product.Params
}

func (b *builderStub) BuildProduct(_ context.Context, productType string, params product.Params) (product.Product, error) {
	b.gotParams = params
	switch {
	case productType != product.TypeCourse:
		return nil, product.ErrUnknownProductType
	case params.TargetID == 404:
		return nil, service.ErrCourseNotFound
	case params.TargetID == 500:
		return nil, errors.New("db down")
	}
	p := &product.CourseProduct{Params: params, Title: "Go", Price: 20, ShowTemplate: product.CourseShowTemplate}
	return p, nil
}

func newEngine(course *CourseHandler, prod *ProductHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyClaims, &service.Claims{TokenType: service.TokenTypeAdmin, UserID: 9})
	})
	if course != nil {
		r.GET("/courses/:id", course.GetCourse)
		r.POST("/courses/:id/copy", course.CopyCourse)
	}
	if prod != nil {
		r.GET("/products/:type/:target_id", prod.GetProduct)
	}
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCourseHandler_GetCourse(t *testing.T) {
	r := newEngine(NewCourseHandler(courseReaderStub{}, &duplicatorStub{}, zerolog.Nop()), nil)

	w, env := do(r, http.MethodGet, "/courses/42", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, []any{}, data["chapters"], "nil lists render as []")
	assert.Len(t, data["tasks"], 1)

	w, env = do(r, http.MethodGet, "/courses/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrNotFound, env.Error.Code)

	w, _ = do(r, http.MethodGet, "/courses/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandler_CopyCourse(t *testing.T) {
	dup := &duplicatorStub{}
	r := newEngine(NewCourseHandler(courseReaderStub{}, dup, zerolog.Nop()), nil)

	w, env := do(r, http.MethodPost, "/courses/42/copy", `{"title":"Go (copy)","course_set_id":8}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 42, dup.gotID)
	assert.Equal(t, service.CopyOptions{Title: "Go (copy)", CourseSetID: 8, CreatorID: 9}, dup.gotOpts)
	assert.Equal(t, "c-1", env.Data.(map[string]any)["copy_id"])
}

func TestCourseHandler_CopyCourse_EmptyBody(t *testing.T) {
	dup := &duplicatorStub{}
	r := newEngine(NewCourseHandler(courseReaderStub{}, dup, zerolog.Nop()), nil)

	w, _ := do(r, http.MethodPost, "/courses/42/copy", "")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, service.CopyOptions{CreatorID: 9}, dup.gotOpts)
}

func TestCourseHandler_CopyCourse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   response.ErrCode
	}{
		{"validation", `{"title":"x"}`, nil, http.StatusBadRequest, response.ErrValidation},
		{"source missing", "", service.ErrCourseNotFound, http.StatusNotFound, response.ErrNotFound},
		{"course set missing", "", service.ErrCourseSetNotFound, http.StatusNotFound, response.ErrNotFound},
		{"chain failure", "", errors.New("copy task 10: disk full"), http.StatusInternalServerError, response.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(NewCourseHandler(courseReaderStub{}, &duplicatorStub{err: tt.err}, zerolog.Nop()), nil)
			w, env := do(r, http.MethodPost, "/courses/42/copy", tt.body)
			assert.Equal(t, tt.status, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	b := &builderStub{}
	r := newEngine(nil, NewProductHandler(b, zerolog.Nop()))

	w, env := do(r, http.MethodGet, "/products/course/42?num=2&unit=month", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, product.Params{TargetID: 42, Num: 2, Unit: "month"}, b.gotParams)
	data := env.Data.(map[string]any)
	assert.Equal(t, "course", data["type"])
	p := data["product"].(map[string]any)
	assert.Equal(t, "Go", p["title"])
	assert.Equal(t, product.CourseShowTemplate, p["show_template"])
	assert.EqualValues(t, 42, p["target_id"])
}

func TestProductHandler_GetProduct_Errors(t *testing.T) {
	tests := []struct {
		path   string
		status int
		code   response.ErrCode
	}{
		{"/products/course/abc", http.StatusBadRequest, response.ErrInvalidID},
		{"/products/course/42?num=0", http.StatusBadRequest, response.ErrValidation},
		{"/products/vip/42", http.StatusBadRequest, response.ErrUnknownProduct},
		{"/products/course/404", http.StatusNotFound, response.ErrNotFound},
		{"/products/course/500", http.StatusInternalServerError, response.ErrInternal},
	}

	r := newEngine(nil, NewProductHandler(&builderStub{}, zerolog.Nop()))
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, env := do(r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}
