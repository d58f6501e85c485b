package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/stemsi/course-backend/internal/model"
)

func bindCopyRequest(body string) map[string]string {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req model.CopyCourseRequest
	return Bind(c, &req)
}

func TestBind(t *testing.T) {
	Setup()

	assert.Nil(t, bindCopyRequest(`{"title":"Go (copy)","course_set_id":3}`))
	assert.Nil(t, bindCopyRequest(`{}`))

	fields := bindCopyRequest(`{"title":"x","course_set_id":-1}`)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "course_set_id")

	fields = bindCopyRequest(`{"title":"    "}`)
	assert.Equal(t, "title must not be blank", fields["title"])

	fields = bindCopyRequest(`{"title":`)
	assert.Contains(t, fields, "detail")
}
