package activity

import (
	"strings"

	"z-lesson-ai-api/internal/domain/entity"
	workflowprompt "z-lesson-ai-api/internal/workflow/prompt"
)

// contentTemplate 每种活动类型的生成描述符。
// 四种类型共享同一条生成/清洗/解析/校验链路，差异全部收敛在这里。
type contentTemplate struct {
	promptID workflowprompt.PromptID
	// requiredArrayField 解析结果必须包含的顶层数组字段
	requiredArrayField string
	// requireNonEmpty 该数组是否必须非空
	requireNonEmpty bool
	// vars 构造模板变量
	vars func(in *GenerateInput, lessonContext string) map[string]any
}

var contentTemplates = map[entity.ActivityType]contentTemplate{
	entity.ActivityTypeQuiz: {
		promptID:           workflowprompt.PromptQuizV1,
		requiredArrayField: "questions",
		requireNonEmpty:    true,
		vars: func(in *GenerateInput, lessonContext string) map[string]any {
			p := quizParams(in.Position)
			return map[string]any{
				"lesson_context": lessonContext,
				"question_count": p.QuestionCount,
				"quiz_focus":     p.Focus,
				"position_label": p.PositionLabel,
			}
		},
	},
	entity.ActivityTypeExercise: {
		promptID:           workflowprompt.PromptExerciseV1,
		requiredArrayField: "steps",
		vars: func(_ *GenerateInput, lessonContext string) map[string]any {
			return map[string]any{"lesson_context": lessonContext}
		},
	},
	entity.ActivityTypePracticalTask: {
		promptID:           workflowprompt.PromptPracticalTaskV1,
		requiredArrayField: "objectives",
		vars: func(_ *GenerateInput, lessonContext string) map[string]any {
			return map[string]any{"lesson_context": lessonContext}
		},
	},
	entity.ActivityTypeReflection: {
		promptID:           workflowprompt.PromptReflectionV1,
		requiredArrayField: "questions",
		vars: func(_ *GenerateInput, lessonContext string) map[string]any {
			return map[string]any{"lesson_context": lessonContext}
		},
	},
}

// quizShape 由测验位置推导出的提示词参数，调用方不可覆盖
type quizShape struct {
	QuestionCount int
	Focus         string
	PositionLabel string
}

// quizParams 测验位置到题量/侧重点的固定映射
func quizParams(position entity.QuizPosition) quizShape {
	switch position {
	case entity.QuizPositionOpening:
		return quizShape{QuestionCount: 3, Focus: "knowledge check", PositionLabel: "opening"}
	case entity.QuizPositionClosing:
		return quizShape{QuestionCount: 7, Focus: "comprehensive assessment", PositionLabel: "closing"}
	default:
		return quizShape{QuestionCount: 5, Focus: "application", PositionLabel: "mid-lesson"}
	}
}

// activityLabel 活动类型（含测验位置）的人类可读标签，
// 用于元数据提示词，也是元数据降级时的固定标题表。
func activityLabel(t entity.ActivityType, position entity.QuizPosition) string {
	switch t {
	case entity.ActivityTypeQuiz:
		switch position {
		case entity.QuizPositionOpening:
			return "Opening Quiz"
		case entity.QuizPositionClosing:
			return "Closing Quiz"
		default:
			return "Mid-Lesson Quiz"
		}
	case entity.ActivityTypeExercise:
		return "Exercise"
	case entity.ActivityTypePracticalTask:
		return "Practical Task"
	case entity.ActivityTypeReflection:
		return "Reflection"
	default:
		return "Activity"
	}
}

// typeWords 把活动类型的下划线换成空格，用于面向学员的文案
func typeWords(t entity.ActivityType) string {
	return strings.ReplaceAll(string(t), "_", " ")
}
