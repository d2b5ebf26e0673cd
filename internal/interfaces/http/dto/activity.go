// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"z-lesson-ai-api/internal/application/activity"
	"z-lesson-ai-api/internal/domain/entity"
)

// ActivityGenerateRequest 单个活动生成请求
type ActivityGenerateRequest struct {
	Type           string `json:"type" binding:"required"`
	ActivityNumber int    `json:"activity_number"`
	// Position 仅对 quiz 有意义：opening/mid/closing，缺省为 mid
	Position string `json:"position"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// ToGenerateInput 转换为应用层生成输入
func (r *ActivityGenerateRequest) ToGenerateInput(lessonID, provider, model string) *activity.GenerateInput {
	number := r.ActivityNumber
	if number < 1 {
		number = 1
	}
	return &activity.GenerateInput{
		LessonID:       lessonID,
		Type:           entity.ActivityType(r.Type),
		ActivityNumber: number,
		Position:       entity.QuizPosition(r.Position),
		Provider:       provider,
		Model:          model,
	}
}

// BatchPlanEntry 批量生成计划中的一项
type BatchPlanEntry struct {
	Type     string `json:"type" binding:"required"`
	Position string `json:"position"`
}

// ActivityBatchGenerateRequest 批量生成请求；plan 为空时使用服务端默认计划
type ActivityBatchGenerateRequest struct {
	Plan []BatchPlanEntry `json:"plan"`
}

// ToPlan 转换为应用层生成计划
func (r *ActivityBatchGenerateRequest) ToPlan() []activity.PlanEntry {
	if len(r.Plan) == 0 {
		return nil
	}
	plan := make([]activity.PlanEntry, 0, len(r.Plan))
	for _, e := range r.Plan {
		plan = append(plan, activity.PlanEntry{
			Type:     entity.ActivityType(e.Type),
			Position: entity.QuizPosition(e.Position),
		})
	}
	return plan
}

// ActivityUsageResponse LLM 用量信息
type ActivityUsageResponse struct {
	Provider         string `json:"provider,omitempty"`
	Model            string `json:"model,omitempty"`
	PromptTokens     int    `json:"prompt_tokens,omitempty"`
	CompletionTokens int    `json:"completion_tokens,omitempty"`
	GeneratedAt      string `json:"generated_at,omitempty"`
}

// ActivityResponse 生成活动响应
type ActivityResponse struct {
	ActivityNumber int                    `json:"activity_number"`
	Type           string                 `json:"type"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Content        map[string]any         `json:"content"`
	Usage          *ActivityUsageResponse `json:"usage,omitempty"`
}

// ActivityBatchResponse 批量生成响应
type ActivityBatchResponse struct {
	LessonID   string              `json:"lesson_id"`
	Activities []*ActivityResponse `json:"activities"`
}

// ToActivityResponse 转换生成结果
func ToActivityResponse(out *activity.GeneratedActivity) *ActivityResponse {
	if out == nil {
		return nil
	}
	resp := &ActivityResponse{
		ActivityNumber: out.ActivityNumber,
		Type:           string(out.Type),
		Title:          out.Title,
		Description:    out.Description,
		Content:        out.Content,
	}
	if out.Meta.Provider != "" || out.Meta.PromptTokens > 0 {
		resp.Usage = &ActivityUsageResponse{
			Provider:         out.Meta.Provider,
			Model:            out.Meta.Model,
			PromptTokens:     out.Meta.PromptTokens,
			CompletionTokens: out.Meta.CompletionTokens,
		}
		if !out.Meta.GeneratedAt.IsZero() {
			resp.Usage.GeneratedAt = out.Meta.GeneratedAt.Format(time.RFC3339)
		}
	}
	return resp
}

// ToActivityResponses 批量转换生成结果
func ToActivityResponses(outs []*activity.GeneratedActivity) []*ActivityResponse {
	resps := make([]*ActivityResponse, 0, len(outs))
	for _, out := range outs {
		resps = append(resps, ToActivityResponse(out))
	}
	return resps
}
