// Package activity 实现课时活动的生成流水线：
// 背景构建 -> 元数据生成 -> 按类型生成内容 -> 结构校验。
package activity

import (
	"fmt"

	"z-lesson-ai-api/internal/domain/entity"
	wfmodel "z-lesson-ai-api/internal/workflow/model"
)

// GenerateInput 单个活动的生成请求
type GenerateInput struct {
	LessonID       string
	Type           entity.ActivityType
	ActivityNumber int
	// Position 仅对 quiz 有意义；为空时由编排器回落为 mid
	Position entity.QuizPosition

	// Provider/Model 可覆盖默认 LLM 提供商配置
	Provider string
	Model    string
}

// Metadata 活动标题与描述
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GeneratedActivity 流水线的输出单元。
// Content 是模型输出解析后的原样对象，除浅层结构校验外不做任何规整。
type GeneratedActivity struct {
	ActivityNumber int                 `json:"activity_number"`
	Type           entity.ActivityType `json:"type"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Content        map[string]any      `json:"content"`
	Meta           wfmodel.LLMUsageMeta `json:"meta,omitempty"`
}

// PlanEntry 批量生成计划中的一项
type PlanEntry struct {
	Type     entity.ActivityType `json:"type"`
	Position entity.QuizPosition `json:"position,omitempty"`
}

// DefaultPlan 返回默认的 5 项课时活动计划：
// 开场测验、练习、课中测验、实战任务、结课测验。
func DefaultPlan() []PlanEntry {
	return []PlanEntry{
		{Type: entity.ActivityTypeQuiz, Position: entity.QuizPositionOpening},
		{Type: entity.ActivityTypeExercise},
		{Type: entity.ActivityTypeQuiz, Position: entity.QuizPositionMid},
		{Type: entity.ActivityTypePracticalTask},
		{Type: entity.ActivityTypeQuiz, Position: entity.QuizPositionClosing},
	}
}

// ContentGenerationError 内容生成失败：
// 要么清洗后的文本无法解析为 JSON，要么解析结果缺少必需的结构字段。
// 两种情况的 Reason 不同，便于排查；都不会自动重试。
type ContentGenerationError struct {
	ContentType entity.ActivityType
	Reason      string
	Err         error
}

// Error 实现 error 接口
func (e *ContentGenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s content generation failed: %s: %v", e.ContentType, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s content generation failed: %s", e.ContentType, e.Reason)
}

// Unwrap 返回底层错误
func (e *ContentGenerationError) Unwrap() error {
	return e.Err
}
