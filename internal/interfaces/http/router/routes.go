// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, h *Handlers) {
	// 课程管理
	courses := v1.Group("/courses")
	{
		courses.GET("/:cid/lessons", h.Lesson.ListCourseLessons)
	}

	// 课时管理
	lessons := v1.Group("/lessons")
	{
		lessons.GET("/:lid", h.Lesson.GetLesson)

		// 生成接口调用外部模型，单独限流
		generate := lessons.Group("")
		if h.RateLimit != nil {
			generate.Use(h.RateLimit)
		}
		generate.POST("/:lid/activities/generate", h.Activity.Generate)
		generate.POST("/:lid/activities/generate-batch", h.Activity.GenerateBatch)
	}
}
