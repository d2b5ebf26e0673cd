package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-lesson-ai-api/internal/application/lessonctx"
	"z-lesson-ai-api/internal/domain/entity"
	apperrors "z-lesson-ai-api/pkg/errors"
)

func newTestOrchestrator(factory *fakeFactory, repo *fakeLessonRepo) *Orchestrator {
	return NewOrchestrator(
		lessonctx.NewBuilder(repo),
		NewContentGenerator(factory),
		NewMetadataGenerator(factory),
	)
}

func TestGenerateActivitySuccess(t *testing.T) {
	// 第一次调用生成元数据，第二次生成内容
	fake := &fakeChatModel{responses: []string{
		`{"title":"Pricing Quiz","description":"Check your pricing knowledge."}`,
		`{"questions":[{"id":1,"text":"Q1","options":["a","b","c","d"],"correctAnswer":2,"explanation":"e"}]}`,
	}}
	o := newTestOrchestrator(&fakeFactory{configured: true, model: fake}, &fakeLessonRepo{lesson: testLesson()})

	out, err := o.GenerateActivity(context.Background(), quizInput())
	require.NoError(t, err)

	assert.Equal(t, 1, out.ActivityNumber)
	assert.Equal(t, entity.ActivityTypeQuiz, out.Type)
	assert.Equal(t, "Pricing Quiz", out.Title)
	assert.Equal(t, "Check your pricing knowledge.", out.Description)
	require.Contains(t, out.Content, "questions")
	assert.Equal(t, 2, fake.calls)
}

func TestGenerateActivityQuizDefaultsToMid(t *testing.T) {
	// 元数据输出不合法，降级标题暴露实际使用的测验位置
	fake := &fakeChatModel{responses: []string{
		`not metadata`,
		`{"questions":[{"id":1,"text":"Q1","options":["a","b","c","d"],"correctAnswer":0,"explanation":"e"}]}`,
	}}
	o := newTestOrchestrator(&fakeFactory{configured: true, model: fake}, &fakeLessonRepo{lesson: testLesson()})

	in := quizInput()
	in.Position = ""
	out, err := o.GenerateActivity(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Mid-Lesson Quiz", out.Title)

	// 调用方的输入不被改写
	assert.Equal(t, entity.QuizPosition(""), in.Position)
}

func TestGenerateActivityUnsupportedType(t *testing.T) {
	o := newTestOrchestrator(&fakeFactory{configured: true, model: &fakeChatModel{responses: []string{"{}"}}}, &fakeLessonRepo{lesson: testLesson()})

	_, err := o.GenerateActivity(context.Background(), &GenerateInput{
		LessonID: "lesson-1",
		Type:     entity.ActivityType("karaoke"),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeUnsupportedActivityType, appErr.Code)
}

func TestGenerateActivityLessonNotFound(t *testing.T) {
	fake := &fakeChatModel{responses: []string{"{}"}}
	o := newTestOrchestrator(&fakeFactory{configured: true, model: fake}, &fakeLessonRepo{lesson: nil})

	_, err := o.GenerateActivity(context.Background(), quizInput())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeLessonNotFound, appErr.Code)
	// 背景构建失败时不调用模型
	assert.Equal(t, 0, fake.calls)
}

func TestGenerateActivityContentFailureAborts(t *testing.T) {
	fake := &fakeChatModel{responses: []string{
		`{"title":"T","description":"D"}`,
		`{"wrong":"shape"}`,
	}}
	o := newTestOrchestrator(&fakeFactory{configured: true, model: fake}, &fakeLessonRepo{lesson: testLesson()})

	_, err := o.GenerateActivity(context.Background(), quizInput())
	require.Error(t, err)

	var cge *ContentGenerationError
	assert.True(t, errors.As(err, &cge))
}

func TestGenerateActivityNotConfigured(t *testing.T) {
	o := newTestOrchestrator(&fakeFactory{configured: false}, &fakeLessonRepo{lesson: testLesson()})

	_, err := o.GenerateActivity(context.Background(), quizInput())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeLLMNotConfigured, appErr.Code)
}
