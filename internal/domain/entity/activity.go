package entity

import (
	"time"
)

// ActivityType 活动类型（封闭枚举）
type ActivityType string

const (
	ActivityTypeQuiz          ActivityType = "quiz"
	ActivityTypeExercise      ActivityType = "exercise"
	ActivityTypePracticalTask ActivityType = "practical_task"
	ActivityTypeReflection    ActivityType = "reflection"
)

// Valid 检查活动类型是否在封闭枚举内
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeQuiz, ActivityTypeExercise, ActivityTypePracticalTask, ActivityTypeReflection:
		return true
	default:
		return false
	}
}

// QuizPosition 测验在课时中的位置，仅对 quiz 类型有意义
type QuizPosition string

const (
	QuizPositionOpening QuizPosition = "opening"
	QuizPositionMid     QuizPosition = "mid"
	QuizPositionClosing QuizPosition = "closing"
)

// Valid 检查测验位置是否在封闭枚举内
func (p QuizPosition) Valid() bool {
	switch p {
	case QuizPositionOpening, QuizPositionMid, QuizPositionClosing:
		return true
	default:
		return false
	}
}

// Activity 课时活动实体
type Activity struct {
	ID             string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LessonID       string         `json:"lesson_id" gorm:"type:uuid;index;not null"`
	ActivityNumber int            `json:"activity_number" gorm:"not null"`
	Title          string         `json:"title" gorm:"type:varchar(255)"`
	Description    string         `json:"description,omitempty" gorm:"type:text"`
	Type           ActivityType   `json:"type" gorm:"type:varchar(32);not null"`
	Content        map[string]any `json:"content,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Activity) TableName() string {
	return "activities"
}
