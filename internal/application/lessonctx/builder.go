// Package lessonctx 构建喂给生成提示词的课时背景文本
package lessonctx

import (
	"context"
	"fmt"
	"strings"

	"z-lesson-ai-api/internal/domain/entity"
	"z-lesson-ai-api/internal/domain/repository"
	apperrors "z-lesson-ai-api/pkg/errors"
	"z-lesson-ai-api/pkg/logger"
)

// LessonContext 渲染后的课时背景。仅在单次生成调用内使用，不持久化。
type LessonContext struct {
	LessonID     string
	CourseNumber int
	Text         string
}

// Builder 课时背景构建器
type Builder struct {
	lessonRepo repository.LessonRepository
}

// NewBuilder 创建课时背景构建器
func NewBuilder(lessonRepo repository.LessonRepository) *Builder {
	return &Builder{lessonRepo: lessonRepo}
}

// Build 根据课时 ID 构建背景文本；课时不存在时返回 ErrLessonNotFound
func (b *Builder) Build(ctx context.Context, lessonID string) (*LessonContext, error) {
	lesson, err := b.lessonRepo.GetWithContext(ctx, lessonID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load lesson")
	}
	if lesson == nil {
		return nil, apperrors.ErrLessonNotFound.WithDetail(lessonID)
	}
	if lesson.Course == nil {
		return nil, apperrors.ErrCourseNotFound.WithDetail(lesson.CourseID)
	}

	text := Render(lesson)
	logger.Debug(ctx, "lesson context built",
		"lesson_id", lessonID,
		"course_number", lesson.Course.CourseNumber,
		"existing_activities", len(lesson.Activities),
	)

	return &LessonContext{
		LessonID:     lesson.ID,
		CourseNumber: lesson.Course.CourseNumber,
		Text:         text,
	}, nil
}

// Render 把课时及其关联渲染成确定性的纯文本背景。
// 该文本是所有生成提示词共享的唯一上下文来源，格式变更会影响全部模板。
func Render(lesson *entity.Lesson) string {
	var sb strings.Builder

	course := lesson.Course
	fmt.Fprintf(&sb, "Course: %s (%s)\n", course.Title, course.Theme())
	fmt.Fprintf(&sb, "Course Description: %s\n", course.Description)
	fmt.Fprintf(&sb, "Lesson %d: %s\n", lesson.LessonNumber, lesson.Title)
	fmt.Fprintf(&sb, "Lesson Description: %s\n", lesson.Description)
	fmt.Fprintf(&sb, "Video Duration: %d minutes\n", lesson.VideoDuration)

	sb.WriteString("Existing Activities:\n")
	if len(lesson.Activities) == 0 {
		sb.WriteString("None\n")
		return sb.String()
	}
	for _, a := range lesson.Activities {
		fmt.Fprintf(&sb, "- Activity %d: %s (%s)\n", a.ActivityNumber, a.Title, a.Type)
	}
	return sb.String()
}
