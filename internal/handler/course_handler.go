package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/middleware"
	"github.com/stemsi/course-backend/internal/model"
	"github.com/stemsi/course-backend/internal/response"
	"github.com/stemsi/course-backend/internal/service"
	"github.com/stemsi/course-backend/internal/validator"
)

// CourseReader is the read side CourseHandler needs.
type CourseReader interface {
	GetCourse(ctx context.Context, id int) (*model.Course, error)
	ListChapters(ctx context.Context, courseID int) ([]model.CourseChapter, error)
	ListTasks(ctx context.Context, courseID int) ([]model.CourseTask, error)
}

// CourseDuplicator copies courses.
type CourseDuplicator interface {
	CopyCourse(ctx context.Context, courseID int, opts service.CopyOptions) (*model.CopyCourseResponse, error)
}

// CourseHandler serves admin course endpoints.
type CourseHandler struct {
	courses CourseReader
	copies  CourseDuplicator
	log     zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses CourseReader, copies CourseDuplicator, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courses: courses,
		copies:  copies,
		log:     log.With().Str("component", "course_handler").Logger(),
	}
}

// GetCourse godoc
// GET /api/v1/admin/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ctx := c.Request.Context()
	course, err := h.courses.GetCourse(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	chapters, err := h.courses.ListChapters(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	tasks, err := h.courses.ListTasks(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	if chapters == nil {
		chapters = []model.CourseChapter{}
	}
	if tasks == nil {
		tasks = []model.CourseTask{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"course":   course,
		"chapters": chapters,
		"tasks":    tasks,
	})
}

// CopyCourse godoc
// POST /api/v1/admin/courses/:id/copy
// Copies the course, its outline and its tasks in one transaction.
func (h *CourseHandler) CopyCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CopyCourseRequest
	if c.Request.ContentLength != 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
	}

	opts := service.CopyOptions{Title: req.Title, CourseSetID: req.CourseSetID}
	if claims := middleware.GetClaims(c); claims != nil {
		opts.CreatorID = claims.UserID
	}

	res, err := h.copies.CopyCourse(c.Request.Context(), id, opts)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *CourseHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrCourseSetNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("Course request failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
