package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrLessonNotFound.HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, ErrUnsupportedActivityType.HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, ErrLLMNotConfigured.HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, ErrValidationFailed.HTTPStatus)
	assert.Equal(t, http.StatusTooManyRequests, ErrTooManyRequests.HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, ErrInternalError.HTTPStatus)
}

func TestWithDetailClones(t *testing.T) {
	err := ErrLessonNotFound.WithDetail("lesson-9")
	assert.Equal(t, "lesson-9", err.Detail)
	// 预定义错误不被修改
	assert.Empty(t, ErrLessonNotFound.Detail)
	assert.Equal(t, ErrLessonNotFound.Code, err.Code)
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, CodeDatabaseError, "failed to load lesson")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to load lesson")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLLMNotConfiguredMessage(t *testing.T) {
	assert.Equal(t, "AI client is not configured", ErrLLMNotConfigured.Message)
}
