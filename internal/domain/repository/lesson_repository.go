// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"z-lesson-ai-api/internal/domain/entity"
)

// LessonRepository 课时仓储接口
type LessonRepository interface {
	// GetByID 根据 ID 获取课时，未找到时返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*entity.Lesson, error)

	// GetWithContext 根据 ID 获取课时，并预加载所属课程和已有活动（按活动序号升序）
	GetWithContext(ctx context.Context, id string) (*entity.Lesson, error)

	// ListByCourse 获取课程的课时列表（按课时序号排序）
	ListByCourse(ctx context.Context, courseID string) ([]*entity.Lesson, error)
}
