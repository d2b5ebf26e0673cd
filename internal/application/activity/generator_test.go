package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-lesson-ai-api/internal/domain/entity"
	apperrors "z-lesson-ai-api/pkg/errors"
)

const lessonContextText = "Course: Marketing 101 (Marketing Mastery)\nLesson 1: Pricing Your Product\n"

func quizInput() *GenerateInput {
	return &GenerateInput{
		LessonID:       "lesson-1",
		Type:           entity.ActivityTypeQuiz,
		ActivityNumber: 1,
		Position:       entity.QuizPositionMid,
	}
}

func TestGenerateNotConfigured(t *testing.T) {
	g := NewContentGenerator(&fakeFactory{configured: false})

	_, _, err := g.Generate(context.Background(), quizInput(), lessonContextText)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeLLMNotConfigured, appErr.Code)
	assert.Equal(t, "AI client is not configured", appErr.Message)
}

func TestGenerateUnsupportedType(t *testing.T) {
	g := NewContentGenerator(&fakeFactory{configured: true, model: &fakeChatModel{responses: []string{"{}"}}})

	in := quizInput()
	in.Type = entity.ActivityType("survey")
	_, _, err := g.Generate(context.Background(), in, lessonContextText)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeUnsupportedActivityType, appErr.Code)
}

func TestGenerateQuizSuccess(t *testing.T) {
	raw := `{"questions":[{"id":1,"text":"Q1","options":["a","b","c","d"],"correctAnswer":0,"explanation":"because"}],"extra":"kept"}`
	fake := &fakeChatModel{
		responses: []string{raw},
		usage:     &schema.TokenUsage{PromptTokens: 120, CompletionTokens: 80},
	}
	g := NewContentGenerator(&fakeFactory{configured: true, model: fake})

	content, meta, err := g.Generate(context.Background(), quizInput(), lessonContextText)
	require.NoError(t, err)

	questions, ok := content["questions"].([]any)
	require.True(t, ok)
	assert.Len(t, questions, 1)
	// 模型输出原样保留，不做字段裁剪
	assert.Equal(t, "kept", content["extra"])

	assert.Equal(t, 120, meta.PromptTokens)
	assert.Equal(t, 80, meta.CompletionTokens)
	assert.Equal(t, 1, fake.calls)
}

func TestGenerateStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"steps\":[{\"step\":1,\"instruction\":\"do it\"}]}\n```"
	g := NewContentGenerator(&fakeFactory{configured: true, model: &fakeChatModel{responses: []string{raw}}})

	in := quizInput()
	in.Type = entity.ActivityTypeExercise
	content, _, err := g.Generate(context.Background(), in, lessonContextText)
	require.NoError(t, err)

	steps, ok := content["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, 1)
}

func TestGenerateParseFailure(t *testing.T) {
	g := NewContentGenerator(&fakeFactory{configured: true, model: &fakeChatModel{responses: []string{"{not json at all"}}})

	_, _, err := g.Generate(context.Background(), quizInput(), lessonContextText)
	require.Error(t, err)

	var cge *ContentGenerationError
	require.True(t, errors.As(err, &cge))
	assert.Equal(t, entity.ActivityTypeQuiz, cge.ContentType)
	assert.Contains(t, cge.Reason, "failed to parse quiz json")
	assert.Error(t, cge.Unwrap())
}

func TestGenerateMissingRequiredArray(t *testing.T) {
	g := NewContentGenerator(&fakeFactory{configured: true, model: &fakeChatModel{responses: []string{`{"items":[]}`}}})

	_, _, err := g.Generate(context.Background(), quizInput(), lessonContextText)
	require.Error(t, err)

	var cge *ContentGenerationError
	require.True(t, errors.As(err, &cge))
	assert.Contains(t, cge.Reason, "missing questions array")
	// 结构错误与解析错误是不同的两类信息
	assert.NotContains(t, cge.Reason, "parse")
}

func TestGenerateEmptyQuizQuestions(t *testing.T) {
	g := NewContentGenerator(&fakeFactory{configured: true, model: &fakeChatModel{responses: []string{`{"questions":[]}`}}})

	_, _, err := g.Generate(context.Background(), quizInput(), lessonContextText)
	require.Error(t, err)

	var cge *ContentGenerationError
	require.True(t, errors.As(err, &cge))
	assert.Contains(t, cge.Reason, "empty questions array")
}

func TestGenerateEmptyReflectionQuestionsAllowed(t *testing.T) {
	// quiz 之外的类型只要求字段存在且是数组，空数组放行
	g := NewContentGenerator(&fakeFactory{configured: true, model: &fakeChatModel{responses: []string{`{"questions":[]}`}}})

	in := quizInput()
	in.Type = entity.ActivityTypeReflection
	content, _, err := g.Generate(context.Background(), in, lessonContextText)
	require.NoError(t, err)
	assert.Contains(t, content, "questions")
}

func TestGenerateLLMError(t *testing.T) {
	g := NewContentGenerator(&fakeFactory{configured: true, model: &fakeChatModel{err: errors.New("upstream 500")}})

	_, _, err := g.Generate(context.Background(), quizInput(), lessonContextText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 500")
}
