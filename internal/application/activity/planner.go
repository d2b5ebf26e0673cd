package activity

import (
	"context"
	"fmt"
	"time"

	"z-lesson-ai-api/pkg/logger"
	"z-lesson-ai-api/pkg/metrics"
)

// Planner 批量生成一个课时的全部活动。
// 严格顺序执行；相邻两次生成之间等待固定间隔（外部模型 API 限流）。
// 首个失败项中止整批，已生成的活动被丢弃，错误中带上活动序号与课时 ID。
type Planner struct {
	orchestrator *Orchestrator
	// delay 相邻两次生成之间的间隔；测试注入 0
	delay time.Duration
}

// NewPlanner 创建批量生成器
func NewPlanner(orchestrator *Orchestrator, delay time.Duration) *Planner {
	return &Planner{
		orchestrator: orchestrator,
		delay:        delay,
	}
}

// GenerateLessonActivities 按计划为课时生成活动集合；plan 为空时使用默认计划。
// 活动序号为计划中的 1 起始下标。
func (p *Planner) GenerateLessonActivities(ctx context.Context, lessonID string, plan []PlanEntry) ([]*GeneratedActivity, error) {
	if len(plan) == 0 {
		plan = DefaultPlan()
	}

	logger.Info(ctx, "lesson batch generation started",
		"lesson_id", lessonID,
		"plan_size", len(plan),
	)

	activities := make([]*GeneratedActivity, 0, len(plan))
	for i, entry := range plan {
		if i > 0 && p.delay > 0 {
			select {
			case <-ctx.Done():
				metrics.BatchGenerationTotal.WithLabelValues("canceled").Inc()
				return nil, ctx.Err()
			case <-time.After(p.delay):
			}
		}

		out, err := p.orchestrator.GenerateActivity(ctx, &GenerateInput{
			LessonID:       lessonID,
			Type:           entry.Type,
			ActivityNumber: i + 1,
			Position:       entry.Position,
		})
		if err != nil {
			metrics.BatchGenerationTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("failed to generate activity %d for lesson %s: %w", i+1, lessonID, err)
		}
		activities = append(activities, out)
	}

	metrics.BatchGenerationTotal.WithLabelValues("success").Inc()
	logger.Info(ctx, "lesson batch generation finished",
		"lesson_id", lessonID,
		"generated", len(activities),
	)
	return activities, nil
}
