package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	workflowchain "z-lesson-ai-api/internal/workflow/chain"
	wfmodel "z-lesson-ai-api/internal/workflow/model"
	wfnode "z-lesson-ai-api/internal/workflow/node"
	workflowport "z-lesson-ai-api/internal/workflow/port"
	apperrors "z-lesson-ai-api/pkg/errors"
	"z-lesson-ai-api/pkg/metrics"
)

// ContentGenerator 按活动类型生成内容主体。
// 生命周期：配置前置检查 -> 提示词 -> LLM -> 清洗 -> JSON 解析 -> 浅层结构校验。
// 任何一步失败都向上传播，不做本地恢复。
type ContentGenerator struct {
	chain *workflowchain.ActivityChain
}

// NewContentGenerator 创建内容生成器
func NewContentGenerator(factory workflowport.ChatModelFactory) *ContentGenerator {
	return &ContentGenerator{
		chain: workflowchain.NewActivityChain(factory),
	}
}

// Generate 为一个活动生成内容，返回解析后的原样对象。
func (g *ContentGenerator) Generate(ctx context.Context, in *GenerateInput, lessonContext string) (map[string]any, wfmodel.LLMUsageMeta, error) {
	meta := wfmodel.LLMUsageMeta{}
	if g == nil || g.chain == nil {
		return nil, meta, apperrors.ErrLLMNotConfigured
	}
	if in == nil {
		return nil, meta, apperrors.ErrInvalidParam.WithDetail("input is nil")
	}

	tmpl, ok := contentTemplates[in.Type]
	if !ok {
		return nil, meta, apperrors.ErrUnsupportedActivityType.WithDetail(string(in.Type))
	}

	wfIn := &wfmodel.ActivityGenerateInput{
		PromptID: tmpl.promptID,
		Vars:     tmpl.vars(in, lessonContext),
		Provider: strings.TrimSpace(in.Provider),
		Model:    strings.TrimSpace(in.Model),
	}

	start := time.Now()
	outMsg, err := g.chain.Invoke(ctx, wfIn)
	duration := time.Since(start).Seconds()
	metrics.LLMCallDuration.WithLabelValues(wfIn.Provider, wfIn.Model).Observe(duration)
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(wfIn.Provider, wfIn.Model, "error").Inc()
		return nil, meta, err
	}
	metrics.LLMCallTotal.WithLabelValues(wfIn.Provider, wfIn.Model, "success").Inc()

	meta.Provider = wfIn.Provider
	meta.Model = wfIn.Model
	meta.GeneratedAt = time.Now().UTC()
	if outMsg.ResponseMeta != nil && outMsg.ResponseMeta.Usage != nil {
		meta.PromptTokens = outMsg.ResponseMeta.Usage.PromptTokens
		meta.CompletionTokens = outMsg.ResponseMeta.Usage.CompletionTokens
		metrics.LLMTokensUsed.WithLabelValues(wfIn.Provider, wfIn.Model, "prompt").Add(float64(meta.PromptTokens))
		metrics.LLMTokensUsed.WithLabelValues(wfIn.Provider, wfIn.Model, "completion").Add(float64(meta.CompletionTokens))
	}

	content, err := parseContent(in, tmpl, outMsg.Content)
	if err != nil {
		return nil, meta, err
	}
	return content, meta, nil
}

// parseContent 清洗模型输出并做浅层结构校验。
// 解析失败与结构缺失是两类不同的错误信息，便于区分“模型没给 JSON”和“JSON 给错了形状”。
func parseContent(in *GenerateInput, tmpl contentTemplate, rawText string) (map[string]any, error) {
	jsonText := wfnode.SanitizeModelJSON(rawText)
	if strings.TrimSpace(jsonText) == "" {
		return nil, &ContentGenerationError{
			ContentType: in.Type,
			Reason:      fmt.Sprintf("empty %s output", in.Type),
		}
	}

	var content map[string]any
	if err := json.Unmarshal([]byte(jsonText), &content); err != nil {
		return nil, &ContentGenerationError{
			ContentType: in.Type,
			Reason:      fmt.Sprintf("failed to parse %s json", in.Type),
			Err:         err,
		}
	}

	field, isArray := content[tmpl.requiredArrayField].([]any)
	if !isArray {
		return nil, &ContentGenerationError{
			ContentType: in.Type,
			Reason:      fmt.Sprintf("invalid %s structure: missing %s array", in.Type, tmpl.requiredArrayField),
		}
	}
	if tmpl.requireNonEmpty && len(field) == 0 {
		return nil, &ContentGenerationError{
			ContentType: in.Type,
			Reason:      fmt.Sprintf("invalid %s structure: empty %s array", in.Type, tmpl.requiredArrayField),
		}
	}

	return content, nil
}
