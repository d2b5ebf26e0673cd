package lessonctx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-lesson-ai-api/internal/domain/entity"
	apperrors "z-lesson-ai-api/pkg/errors"
)

type fakeLessonRepo struct {
	lesson *entity.Lesson
	err    error
}

func (f *fakeLessonRepo) GetByID(_ context.Context, _ string) (*entity.Lesson, error) {
	return f.lesson, f.err
}

func (f *fakeLessonRepo) GetWithContext(_ context.Context, _ string) (*entity.Lesson, error) {
	return f.lesson, f.err
}

func (f *fakeLessonRepo) ListByCourse(_ context.Context, _ string) ([]*entity.Lesson, error) {
	if f.lesson == nil {
		return nil, f.err
	}
	return []*entity.Lesson{f.lesson}, f.err
}

func sampleLesson() *entity.Lesson {
	return &entity.Lesson{
		ID:            "lesson-1",
		CourseID:      "course-1",
		LessonNumber:  2,
		Title:         "Cash Flow Basics",
		Description:   "Understand incoming and outgoing cash.",
		VideoDuration: 12,
		Course: &entity.Course{
			ID:           "course-1",
			CourseNumber: 3,
			Title:        "Money Matters",
			Description:  "A course about money.",
		},
	}
}

func TestBuildLessonNotFound(t *testing.T) {
	b := NewBuilder(&fakeLessonRepo{lesson: nil})

	_, err := b.Build(context.Background(), "missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeLessonNotFound, appErr.Code)
	assert.Equal(t, "missing", appErr.Detail)
}

func TestBuildRepoError(t *testing.T) {
	b := NewBuilder(&fakeLessonRepo{err: errors.New("boom")})

	_, err := b.Build(context.Background(), "lesson-1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)
}

func TestBuildSuccess(t *testing.T) {
	b := NewBuilder(&fakeLessonRepo{lesson: sampleLesson()})

	lc, err := b.Build(context.Background(), "lesson-1")
	require.NoError(t, err)
	assert.Equal(t, "lesson-1", lc.LessonID)
	assert.Equal(t, 3, lc.CourseNumber)
	assert.Contains(t, lc.Text, "Course: Money Matters (Financial Intelligence)")
}

func TestRenderWithoutActivities(t *testing.T) {
	text := Render(sampleLesson())

	assert.Equal(t, "Course: Money Matters (Financial Intelligence)\n"+
		"Course Description: A course about money.\n"+
		"Lesson 2: Cash Flow Basics\n"+
		"Lesson Description: Understand incoming and outgoing cash.\n"+
		"Video Duration: 12 minutes\n"+
		"Existing Activities:\nNone\n", text)
}

func TestRenderWithActivities(t *testing.T) {
	lesson := sampleLesson()
	lesson.Activities = []entity.Activity{
		{ActivityNumber: 1, Title: "Opening Quiz", Type: entity.ActivityTypeQuiz},
		{ActivityNumber: 2, Title: "Budget Drill", Type: entity.ActivityTypeExercise},
	}

	text := Render(lesson)

	assert.Contains(t, text, "Existing Activities:\n- Activity 1: Opening Quiz (quiz)\n- Activity 2: Budget Drill (exercise)\n")
	assert.NotContains(t, text, "None")
}

func TestRenderThemeFallback(t *testing.T) {
	lesson := sampleLesson()
	lesson.Course.CourseNumber = 12

	text := Render(lesson)
	assert.Contains(t, text, "Course: Money Matters (Business)")
}
