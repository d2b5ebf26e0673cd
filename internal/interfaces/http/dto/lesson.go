// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"z-lesson-ai-api/internal/domain/entity"
)

// LessonResponse 课时摘要响应
type LessonResponse struct {
	ID            string `json:"id"`
	CourseID      string `json:"course_id"`
	LessonNumber  int    `json:"lesson_number"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	VideoDuration int    `json:"video_duration"`
}

// ToLessonResponse 转换课时实体
func ToLessonResponse(lesson *entity.Lesson) *LessonResponse {
	if lesson == nil {
		return nil
	}
	return &LessonResponse{
		ID:            lesson.ID,
		CourseID:      lesson.CourseID,
		LessonNumber:  lesson.LessonNumber,
		Title:         lesson.Title,
		Description:   lesson.Description,
		VideoDuration: lesson.VideoDuration,
	}
}

// ToLessonResponses 批量转换课时实体
func ToLessonResponses(lessons []*entity.Lesson) []*LessonResponse {
	resps := make([]*LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		resps = append(resps, ToLessonResponse(l))
	}
	return resps
}
