package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	workflowchain "z-lesson-ai-api/internal/workflow/chain"
	wfmodel "z-lesson-ai-api/internal/workflow/model"
	wfnode "z-lesson-ai-api/internal/workflow/node"
	workflowport "z-lesson-ai-api/internal/workflow/port"
	workflowprompt "z-lesson-ai-api/internal/workflow/prompt"
	"z-lesson-ai-api/pkg/logger"
	"z-lesson-ai-api/pkg/metrics"
)

// MetadataGenerator 生成活动标题与描述。
// 与内容生成不同，元数据不是评分主体：任何失败（未配置、解析失败、字段缺失）
// 都在内部吸收并回落到固定的标题/描述表，对外永不失败。
type MetadataGenerator struct {
	chain *workflowchain.ActivityChain
}

// NewMetadataGenerator 创建元数据生成器
func NewMetadataGenerator(factory workflowport.ChatModelFactory) *MetadataGenerator {
	return &MetadataGenerator{
		chain: workflowchain.NewActivityChain(factory),
	}
}

// Generate 生成活动元数据；失败时返回确定性的降级结果
func (m *MetadataGenerator) Generate(ctx context.Context, in *GenerateInput, lessonContext string) Metadata {
	md, err := m.generate(ctx, in, lessonContext)
	if err != nil {
		logger.Warn(ctx, "metadata generation failed, using fallback",
			"activity_type", string(in.Type),
			"activity_number", in.ActivityNumber,
			"error", err.Error(),
		)
		metrics.MetadataFallbackTotal.WithLabelValues(string(in.Type)).Inc()
		return fallbackMetadata(in)
	}
	return md
}

func (m *MetadataGenerator) generate(ctx context.Context, in *GenerateInput, lessonContext string) (Metadata, error) {
	var md Metadata
	if m == nil || m.chain == nil {
		return md, fmt.Errorf("metadata chain not configured")
	}

	outMsg, err := m.chain.Invoke(ctx, &wfmodel.ActivityGenerateInput{
		PromptID: workflowprompt.PromptMetadataV1,
		Vars: map[string]any{
			"lesson_context":  lessonContext,
			"activity_label":  activityLabel(in.Type, in.Position),
			"activity_number": in.ActivityNumber,
		},
		Provider: strings.TrimSpace(in.Provider),
		Model:    strings.TrimSpace(in.Model),
	})
	if err != nil {
		return md, err
	}

	jsonText := wfnode.SanitizeModelJSON(outMsg.Content)
	if err := json.Unmarshal([]byte(jsonText), &md); err != nil {
		return md, fmt.Errorf("failed to parse metadata json: %w", err)
	}
	if strings.TrimSpace(md.Title) == "" || strings.TrimSpace(md.Description) == "" {
		return md, fmt.Errorf("invalid metadata structure: title or description empty")
	}
	return md, nil
}

// fallbackMetadata 元数据降级表：标题来自固定的类型/位置标签，
// 描述由类型词拼出固定句式。
func fallbackMetadata(in *GenerateInput) Metadata {
	return Metadata{
		Title:       activityLabel(in.Type, in.Position),
		Description: fmt.Sprintf("Complete this %s to reinforce your learning.", typeWords(in.Type)),
	}
}
