package handler

import (
	"z-lesson-ai-api/internal/domain/repository"
	"z-lesson-ai-api/internal/interfaces/http/dto"
	"z-lesson-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LessonHandler 课时查询接口
type LessonHandler struct {
	lessonRepo repository.LessonRepository
}

// NewLessonHandler 创建课时处理器
func NewLessonHandler(lessonRepo repository.LessonRepository) *LessonHandler {
	return &LessonHandler{lessonRepo: lessonRepo}
}

// GetLesson 获取单个课时
// @Summary 获取课时
// @Tags Lesson
// @Produce json
// @Param lid path string true "课时 ID"
// @Success 200 {object} dto.Response[dto.LessonResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/lessons/{lid} [get]
func (h *LessonHandler) GetLesson(c *gin.Context) {
	ctx := c.Request.Context()
	lessonID := dto.BindLessonID(c)

	lesson, err := h.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		logger.Error(ctx, "failed to load lesson", err, "lesson_id", lessonID)
		dto.InternalError(c, "failed to load lesson")
		return
	}
	if lesson == nil {
		dto.NotFound(c, "lesson not found")
		return
	}

	dto.Success(c, dto.ToLessonResponse(lesson))
}

// ListCourseLessons 获取课程的课时列表
// @Summary 课程课时列表
// @Tags Lesson
// @Produce json
// @Param cid path string true "课程 ID"
// @Success 200 {object} dto.Response[[]dto.LessonResponse]
// @Router /v1/courses/{cid}/lessons [get]
func (h *LessonHandler) ListCourseLessons(c *gin.Context) {
	ctx := c.Request.Context()
	courseID := dto.BindCourseID(c)

	lessons, err := h.lessonRepo.ListByCourse(ctx, courseID)
	if err != nil {
		logger.Error(ctx, "failed to list lessons", err, "course_id", courseID)
		dto.InternalError(c, "failed to list lessons")
		return
	}

	dto.Success(c, dto.ToLessonResponses(lessons))
}
