// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"z-lesson-ai-api/internal/domain/entity"
)

// LessonRepository 课时仓储实现
type LessonRepository struct {
	client *Client
}

// NewLessonRepository 创建课时仓储
func NewLessonRepository(client *Client) *LessonRepository {
	return &LessonRepository{client: client}
}

// GetByID 根据 ID 获取课时
func (r *LessonRepository) GetByID(ctx context.Context, id string) (*entity.Lesson, error) {
	ctx, span := tracer.Start(ctx, "postgres.LessonRepository.GetByID")
	defer span.End()

	var lesson entity.Lesson
	err := r.client.db.WithContext(ctx).First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return &lesson, nil
}

// GetWithContext 根据 ID 获取课时，预加载课程与已有活动（按序号升序）
func (r *LessonRepository) GetWithContext(ctx context.Context, id string) (*entity.Lesson, error) {
	ctx, span := tracer.Start(ctx, "postgres.LessonRepository.GetWithContext")
	defer span.End()

	var lesson entity.Lesson
	err := r.client.db.WithContext(ctx).
		Preload("Course").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activity_number ASC")
		}).
		First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get lesson with context: %w", err)
	}
	return &lesson, nil
}

// ListByCourse 获取课程的课时列表（按课时序号排序）
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID string) ([]*entity.Lesson, error) {
	ctx, span := tracer.Start(ctx, "postgres.LessonRepository.ListByCourse")
	defer span.End()

	var lessons []*entity.Lesson
	err := r.client.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("lesson_number ASC").
		Find(&lessons).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}
