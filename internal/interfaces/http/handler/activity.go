// Package handler 提供 HTTP 请求处理器
package handler

import (
	"errors"
	"strings"

	"z-lesson-ai-api/internal/application/activity"
	"z-lesson-ai-api/internal/config"
	"z-lesson-ai-api/internal/domain/entity"
	"z-lesson-ai-api/internal/interfaces/http/dto"
	apperrors "z-lesson-ai-api/pkg/errors"
	"z-lesson-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ActivityHandler 课时活动生成接口
type ActivityHandler struct {
	cfg          *config.Config
	orchestrator *activity.Orchestrator
	planner      *activity.Planner
}

// NewActivityHandler 创建活动生成处理器
func NewActivityHandler(cfg *config.Config, orchestrator *activity.Orchestrator, planner *activity.Planner) *ActivityHandler {
	return &ActivityHandler{
		cfg:          cfg,
		orchestrator: orchestrator,
		planner:      planner,
	}
}

// Generate 同步生成单个活动（不落库）
// @Summary 生成单个课时活动
// @Description 同步调用 LLM 为课时生成指定类型的活动，返回元数据与内容
// @Tags Activity
// @Accept json
// @Produce json
// @Param lid path string true "课时 ID"
// @Param body body dto.ActivityGenerateRequest true "生成请求"
// @Success 200 {object} dto.Response[dto.ActivityResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /v1/lessons/{lid}/activities/generate [post]
func (h *ActivityHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	lessonID := dto.BindLessonID(c)

	var req dto.ActivityGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if !entity.ActivityType(req.Type).Valid() {
		dto.BadRequest(c, "unsupported activity type: "+req.Type)
		return
	}
	if req.Position != "" && !entity.QuizPosition(req.Position).Valid() {
		dto.BadRequest(c, "invalid quiz position: "+req.Position)
		return
	}

	provider, model, err := resolveProviderModel(h.cfg, req.Provider, req.Model)
	if err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	out, err := h.orchestrator.GenerateActivity(ctx, req.ToGenerateInput(lessonID, provider, model))
	if err != nil {
		logger.Error(ctx, "activity generation failed", err,
			"lesson_id", lessonID,
			"activity_type", req.Type,
		)
		writeGenerationError(c, err)
		return
	}

	dto.Success(c, dto.ToActivityResponse(out))
}

// GenerateBatch 同步批量生成课时活动（不落库）
// @Summary 批量生成课时活动
// @Description 按计划顺序生成课时的全部活动；计划缺省时使用服务端默认计划。任一失败中止整批
// @Tags Activity
// @Accept json
// @Produce json
// @Param lid path string true "课时 ID"
// @Param body body dto.ActivityBatchGenerateRequest true "批量生成请求"
// @Success 200 {object} dto.Response[dto.ActivityBatchResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /v1/lessons/{lid}/activities/generate-batch [post]
func (h *ActivityHandler) GenerateBatch(c *gin.Context) {
	ctx := c.Request.Context()
	lessonID := dto.BindLessonID(c)

	var req dto.ActivityBatchGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	for _, e := range req.Plan {
		if !entity.ActivityType(e.Type).Valid() {
			dto.BadRequest(c, "unsupported activity type in plan: "+e.Type)
			return
		}
		if e.Position != "" && !entity.QuizPosition(e.Position).Valid() {
			dto.BadRequest(c, "invalid quiz position in plan: "+e.Position)
			return
		}
	}

	outs, err := h.planner.GenerateLessonActivities(ctx, lessonID, req.ToPlan())
	if err != nil {
		logger.Error(ctx, "lesson batch generation failed", err, "lesson_id", lessonID)
		writeGenerationError(c, err)
		return
	}

	dto.Success(c, &dto.ActivityBatchResponse{
		LessonID:   lessonID,
		Activities: dto.ToActivityResponses(outs),
	})
}

// writeGenerationError 生成流水线错误到 HTTP 响应的映射。
// 内容结构错误归为 422，应用错误按其预设状态码，其余一律 500。
func writeGenerationError(c *gin.Context, err error) {
	var cge *activity.ContentGenerationError
	if errors.As(err, &cge) {
		dto.UnprocessableEntity(c, "activity content generation failed", &dto.ErrorDetail{
			ErrorCode: "content_generation_failed",
			Details:   err.Error(),
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		detail := &dto.ErrorDetail{ErrorCode: string(appErr.Code)}
		if strings.TrimSpace(appErr.Detail) != "" {
			detail.Details = appErr.Detail
		}
		dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, detail)
		return
	}

	dto.InternalError(c, "activity generation failed")
}
