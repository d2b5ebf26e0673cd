package activity

import (
	"context"
	"time"

	"z-lesson-ai-api/internal/application/lessonctx"
	"z-lesson-ai-api/internal/domain/entity"
	apperrors "z-lesson-ai-api/pkg/errors"
	"z-lesson-ai-api/pkg/logger"
	"z-lesson-ai-api/pkg/metrics"
)

// Orchestrator 单个活动的生成编排：
// 背景 -> 元数据（永不失败）-> 按类型生成内容 -> 组装。
// 背景或内容任何一步失败都会中止整个调用，没有部分结果。
type Orchestrator struct {
	contextBuilder *lessonctx.Builder
	content        *ContentGenerator
	metadata       *MetadataGenerator
}

// NewOrchestrator 创建活动编排器
func NewOrchestrator(contextBuilder *lessonctx.Builder, content *ContentGenerator, metadata *MetadataGenerator) *Orchestrator {
	return &Orchestrator{
		contextBuilder: contextBuilder,
		content:        content,
		metadata:       metadata,
	}
}

// GenerateActivity 生成一个活动
func (o *Orchestrator) GenerateActivity(ctx context.Context, in *GenerateInput) (*GeneratedActivity, error) {
	if in == nil {
		return nil, apperrors.ErrInvalidParam.WithDetail("input is nil")
	}
	if !in.Type.Valid() {
		return nil, apperrors.ErrUnsupportedActivityType.WithDetail(string(in.Type))
	}

	// quiz 未指定位置时回落为 mid
	if in.Type == entity.ActivityTypeQuiz && in.Position == "" {
		normalized := *in
		normalized.Position = entity.QuizPositionMid
		in = &normalized
	}

	ctx = logger.WithContext(ctx, logger.LessonIDKey, in.LessonID)
	start := time.Now()

	lc, err := o.contextBuilder.Build(ctx, in.LessonID)
	if err != nil {
		metrics.ActivityGenerationTotal.WithLabelValues(string(in.Type), "error").Inc()
		return nil, err
	}

	md := o.metadata.Generate(ctx, in, lc.Text)

	content, meta, err := o.content.Generate(ctx, in, lc.Text)
	if err != nil {
		metrics.ActivityGenerationTotal.WithLabelValues(string(in.Type), "error").Inc()
		return nil, err
	}

	metrics.ActivityGenerationTotal.WithLabelValues(string(in.Type), "success").Inc()
	metrics.ActivityGenerationDuration.WithLabelValues(string(in.Type)).Observe(time.Since(start).Seconds())
	logger.Info(ctx, "activity generated",
		"activity_type", string(in.Type),
		"activity_number", in.ActivityNumber,
		"title", md.Title,
	)

	return &GeneratedActivity{
		ActivityNumber: in.ActivityNumber,
		Type:           in.Type,
		Title:          md.Title,
		Description:    md.Description,
		Content:        content,
		Meta:           meta,
	}, nil
}
