package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryChatTemplate(t *testing.T) {
	r := NewRegistry()

	ids := []PromptID{
		PromptQuizV1,
		PromptExerciseV1,
		PromptPracticalTaskV1,
		PromptReflectionV1,
		PromptMetadataV1,
	}
	for _, id := range ids {
		tpl, err := r.ChatTemplate(id)
		require.NoError(t, err, "prompt %s", id)
		require.NotNil(t, tpl, "prompt %s", id)
	}
}

func TestRegistryChatTemplateUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.ChatTemplate(PromptID("nope_v1"))
	assert.Error(t, err)
}

func TestQuizTemplateFormat(t *testing.T) {
	r := NewRegistry()
	tpl, err := r.ChatTemplate(PromptQuizV1)
	require.NoError(t, err)

	msgs, err := tpl.Format(context.Background(), map[string]any{
		"lesson_context": "Course: Demo (Business)\nLesson 1: Intro",
		"question_count": 5,
		"quiz_focus":     "application",
		"position_label": "mid-lesson",
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "Course: Demo (Business)")
}

func TestMetadataTemplateFormat(t *testing.T) {
	r := NewRegistry()
	tpl, err := r.ChatTemplate(PromptMetadataV1)
	require.NoError(t, err)

	msgs, err := tpl.Format(context.Background(), map[string]any{
		"lesson_context":  "Lesson 1: Intro",
		"activity_label":  "Mid-Lesson Quiz",
		"activity_number": 3,
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "Mid-Lesson Quiz")
}
