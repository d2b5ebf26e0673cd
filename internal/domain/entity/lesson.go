package entity

import (
	"time"
)

// Lesson 课时实体
type Lesson struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID     string    `json:"course_id" gorm:"type:uuid;index;not null"`
	LessonNumber int       `json:"lesson_number" gorm:"not null"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	// VideoDuration 视频时长（分钟）
	VideoDuration int       `json:"video_duration" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// 关联：所属课程与已有活动（按活动序号升序）
	Course     *Course    `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Activities []Activity `json:"activities,omitempty" gorm:"foreignKey:LessonID"`
}

// TableName 指定表名
func (Lesson) TableName() string {
	return "lessons"
}
