package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-lesson-ai-api/internal/application/activity"
	"z-lesson-ai-api/internal/config"
	"z-lesson-ai-api/internal/domain/entity"
	apperrors "z-lesson-ai-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/lessons/lesson-1/activities/generate", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWriteGenerationErrorContentFailure(t *testing.T) {
	c, w := newTestContext(t)

	writeGenerationError(c, &activity.ContentGenerationError{
		ContentType: entity.ActivityTypeQuiz,
		Reason:      "invalid quiz structure: missing questions array",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeError(t, w)
	errDetail, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "content_generation_failed", errDetail["error_code"])
	assert.Contains(t, errDetail["details"], "missing questions array")
}

func TestWriteGenerationErrorWrappedContentFailure(t *testing.T) {
	c, w := newTestContext(t)

	// 批量生成会在外面包一层活动序号信息
	inner := &activity.ContentGenerationError{
		ContentType: entity.ActivityTypeExercise,
		Reason:      "failed to parse exercise json",
	}
	writeGenerationError(c, errors.Join(errors.New("failed to generate activity 2 for lesson lesson-1"), inner))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestWriteGenerationErrorAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"lesson not found", apperrors.ErrLessonNotFound.WithDetail("lesson-9"), http.StatusNotFound},
		{"not configured", apperrors.ErrLLMNotConfigured, http.StatusServiceUnavailable},
		{"unsupported type", apperrors.ErrUnsupportedActivityType, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			writeGenerationError(c, tt.err)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestWriteGenerationErrorUnknown(t *testing.T) {
	c, w := newTestContext(t)
	writeGenerationError(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResolveProviderModel(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.DefaultProvider = "openai"
	cfg.LLM.Providers = map[string]config.ProviderConfig{
		"openai": {Model: "gpt-4o-mini"},
	}

	provider, model, err := resolveProviderModel(cfg, "", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider)
	assert.Equal(t, "gpt-4o-mini", model)

	provider, model, err = resolveProviderModel(cfg, "openai", "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider)
	assert.Equal(t, "gpt-4o", model)

	_, _, err = resolveProviderModel(cfg, "unknown", "")
	assert.Error(t, err)

	_, _, err = resolveProviderModel(nil, "", "")
	assert.Error(t, err)
}
