package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"z-lesson-ai-api/internal/domain/entity"
)

func TestQuizParams(t *testing.T) {
	opening := quizParams(entity.QuizPositionOpening)
	assert.Equal(t, 3, opening.QuestionCount)
	assert.Equal(t, "knowledge check", opening.Focus)
	assert.Equal(t, "opening", opening.PositionLabel)

	mid := quizParams(entity.QuizPositionMid)
	assert.Equal(t, 5, mid.QuestionCount)
	assert.Equal(t, "application", mid.Focus)
	assert.Equal(t, "mid-lesson", mid.PositionLabel)

	closing := quizParams(entity.QuizPositionClosing)
	assert.Equal(t, 7, closing.QuestionCount)
	assert.Equal(t, "comprehensive assessment", closing.Focus)
	assert.Equal(t, "closing", closing.PositionLabel)

	// 未知位置按 mid 处理
	unknown := quizParams(entity.QuizPosition(""))
	assert.Equal(t, 5, unknown.QuestionCount)
}

func TestActivityLabel(t *testing.T) {
	assert.Equal(t, "Opening Quiz", activityLabel(entity.ActivityTypeQuiz, entity.QuizPositionOpening))
	assert.Equal(t, "Mid-Lesson Quiz", activityLabel(entity.ActivityTypeQuiz, entity.QuizPositionMid))
	assert.Equal(t, "Mid-Lesson Quiz", activityLabel(entity.ActivityTypeQuiz, ""))
	assert.Equal(t, "Closing Quiz", activityLabel(entity.ActivityTypeQuiz, entity.QuizPositionClosing))
	assert.Equal(t, "Exercise", activityLabel(entity.ActivityTypeExercise, ""))
	assert.Equal(t, "Practical Task", activityLabel(entity.ActivityTypePracticalTask, ""))
	assert.Equal(t, "Reflection", activityLabel(entity.ActivityTypeReflection, ""))
}

func TestTypeWords(t *testing.T) {
	assert.Equal(t, "practical task", typeWords(entity.ActivityTypePracticalTask))
	assert.Equal(t, "quiz", typeWords(entity.ActivityTypeQuiz))
}

func TestContentTemplatesCoverAllTypes(t *testing.T) {
	for _, typ := range []entity.ActivityType{
		entity.ActivityTypeQuiz,
		entity.ActivityTypeExercise,
		entity.ActivityTypePracticalTask,
		entity.ActivityTypeReflection,
	} {
		tmpl, ok := contentTemplates[typ]
		assert.True(t, ok, "missing template for %s", typ)
		assert.NotEmpty(t, tmpl.requiredArrayField, "missing required field for %s", typ)
	}

	// quiz 是唯一要求非空数组的类型
	assert.True(t, contentTemplates[entity.ActivityTypeQuiz].requireNonEmpty)
	assert.False(t, contentTemplates[entity.ActivityTypeExercise].requireNonEmpty)
}

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan()
	assert.Len(t, plan, 5)
	assert.Equal(t, PlanEntry{Type: entity.ActivityTypeQuiz, Position: entity.QuizPositionOpening}, plan[0])
	assert.Equal(t, PlanEntry{Type: entity.ActivityTypeExercise}, plan[1])
	assert.Equal(t, PlanEntry{Type: entity.ActivityTypeQuiz, Position: entity.QuizPositionMid}, plan[2])
	assert.Equal(t, PlanEntry{Type: entity.ActivityTypePracticalTask}, plan[3])
	assert.Equal(t, PlanEntry{Type: entity.ActivityTypeQuiz, Position: entity.QuizPositionClosing}, plan[4])
}
