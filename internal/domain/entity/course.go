// Package entity 定义领域实体
package entity

import (
	"time"
)

// Course 课程实体
type Course struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseNumber int       `json:"course_number" gorm:"not null;uniqueIndex"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Course) TableName() string {
	return "courses"
}

// courseThemes 课程序号（1 起始）到主题名的固定映射
var courseThemes = []string{
	"Business Fundamentals",
	"Marketing Mastery",
	"Financial Intelligence",
	"Sales & Conversion",
	"Operations & Systems",
	"Leadership & Team Building",
	"Growth & Scaling",
}

// CourseTheme 返回课程序号对应的主题名；超出范围回退为 "Business"
func CourseTheme(courseNumber int) string {
	if courseNumber < 1 || courseNumber > len(courseThemes) {
		return "Business"
	}
	return courseThemes[courseNumber-1]
}

// Theme 返回课程的主题名
func (c *Course) Theme() string {
	return CourseTheme(c.CourseNumber)
}
