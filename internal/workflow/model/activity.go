// Package model 定义工作流层的输入输出模型
package model

import (
	"time"

	workflowprompt "z-lesson-ai-api/internal/workflow/prompt"
)

// ActivityGenerateInput 单次活动内容/元数据生成的工作流输入
type ActivityGenerateInput struct {
	// PromptID 模板标识，决定 system/user 提示词
	PromptID workflowprompt.PromptID
	// Vars 模板变量
	Vars map[string]any

	// Provider 指定 LLM 提供商，为空时使用默认提供商
	Provider string
	// Model 覆盖提供商默认模型
	Model       string
	Temperature *float32
	MaxTokens   *int
}

// LLMUsageMeta 一次 LLM 调用的用量元信息
type LLMUsageMeta struct {
	Provider         string    `json:"provider,omitempty"`
	Model            string    `json:"model,omitempty"`
	PromptTokens     int       `json:"prompt_tokens,omitempty"`
	CompletionTokens int       `json:"completion_tokens,omitempty"`
	Temperature      float64   `json:"temperature,omitempty"`
	GeneratedAt      time.Time `json:"generated_at,omitempty"`
}
