// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"github.com/gin-gonic/gin"
)

// LessonIDRequest 课时 ID 请求
type LessonIDRequest struct {
	LessonID string `uri:"lid" binding:"required"`
}

// CourseIDRequest 课程 ID 请求
type CourseIDRequest struct {
	CourseID string `uri:"cid" binding:"required"`
}

// BindLessonID 从 URI 绑定课时 ID
func BindLessonID(c *gin.Context) string {
	return c.Param("lid")
}

// BindCourseID 从 URI 绑定课程 ID
func BindCourseID(c *gin.Context) string {
	return c.Param("cid")
}
