package activity

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"z-lesson-ai-api/internal/domain/entity"
)

// fakeChatModel 按调用次序返回预置输出；responses 用完后重复最后一条
type fakeChatModel struct {
	responses []string
	err       error
	usage     *schema.TokenUsage
	calls     int
}

func (m *fakeChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	idx := m.calls
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	msg := &schema.Message{
		Role:    schema.Assistant,
		Content: m.responses[idx],
	}
	if m.usage != nil {
		msg.ResponseMeta = &schema.ResponseMeta{Usage: m.usage}
	}
	return msg, nil
}

func (m *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("stream not supported")
}

// fakeFactory 测试用的 ChatModelFactory
type fakeFactory struct {
	model      model.BaseChatModel
	configured bool
}

func (f *fakeFactory) Configured() bool {
	return f.configured
}

func (f *fakeFactory) Get(_ context.Context, _ string) (model.BaseChatModel, error) {
	if f.model == nil {
		return nil, fmt.Errorf("no model configured")
	}
	return f.model, nil
}

// fakeLessonRepo 测试用课时仓储
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

func testLesson() *entity.Lesson {
	return &entity.Lesson{
		ID:            "lesson-1",
		CourseID:      "course-1",
		LessonNumber:  1,
		Title:         "Pricing Your Product",
		Description:   "How to pick a price point.",
		VideoDuration: 9,
		Course: &entity.Course{
			ID:           "course-1",
			CourseNumber: 2,
			Title:        "Marketing 101",
			Description:  "Marketing basics.",
		},
	}
}
