package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseTheme(t *testing.T) {
	tests := []struct {
		number int
		want   string
	}{
		{1, "Business Fundamentals"},
		{2, "Marketing Mastery"},
		{3, "Financial Intelligence"},
		{4, "Sales & Conversion"},
		{5, "Operations & Systems"},
		{6, "Leadership & Team Building"},
		{7, "Growth & Scaling"},
		{0, "Business"},
		{8, "Business"},
		{-1, "Business"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CourseTheme(tt.number), "course number %d", tt.number)
	}
}

func TestActivityTypeValid(t *testing.T) {
	assert.True(t, ActivityTypeQuiz.Valid())
	assert.True(t, ActivityTypeExercise.Valid())
	assert.True(t, ActivityTypePracticalTask.Valid())
	assert.True(t, ActivityTypeReflection.Valid())
	assert.False(t, ActivityType("survey").Valid())
	assert.False(t, ActivityType("").Valid())
}

func TestQuizPositionValid(t *testing.T) {
	assert.True(t, QuizPositionOpening.Valid())
	assert.True(t, QuizPositionMid.Valid())
	assert.True(t, QuizPositionClosing.Valid())
	assert.False(t, QuizPosition("middle").Valid())
}
