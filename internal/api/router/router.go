package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Daza111111/axx/config"
	"github.com/Daza111111/axx/internal/api/handler"
	"github.com/Daza111111/axx/internal/api/middleware"
	"github.com/Daza111111/axx/pkg/jwt"
	"github.com/Daza111111/axx/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1（全部需要认证，Token 由外部认证服务签发）──
	v1 := r.Group("/api/v1")
	authorized := v1.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		// 课程模块
		courses := authorized.Group("/courses")
		{
			courses.POST("", middleware.RoleAuth("teacher"), h.Course.CreateCourse)
			courses.GET("/teacher", middleware.RoleAuth("teacher"), h.Course.ListTeacherCourses)
			courses.GET("/student", middleware.RoleAuth("student"), h.Course.ListStudentCourses)
			courses.GET("/:id", h.Course.GetCourse) // 所属教师或已选课学生（Service 层鉴权）
			courses.PUT("/:id", middleware.RoleAuth("teacher"), h.Course.UpdateCourse)
			courses.DELETE("/:id", middleware.RoleAuth("teacher"), h.Course.DeleteCourse)
			courses.GET("/:id/students", middleware.RoleAuth("teacher"), h.Course.ListStudents)
		}

		// 选课模块（访问码兑换加限流，防止暴力枚举）
		enrollments := authorized.Group("/enrollments")
		{
			enrollments.POST("",
				middleware.RoleAuth("student"),
				middleware.RateLimit(rdb, 10, time.Minute),
				h.Enrollment.Redeem,
			)
		}

		// 成绩模块
		grades := authorized.Group("/grades")
		{
			grades.POST("", middleware.RoleAuth("teacher"), h.Grade.SetCorte)
			grades.GET("/course/:id", middleware.RoleAuth("teacher"), h.Grade.ListCourseGrades)
			grades.GET("/student/course/:id", middleware.RoleAuth("student"), h.Grade.GetMyGrade)
			grades.GET("/export/:id", middleware.RoleAuth("teacher"), h.Export.ExportCourseGrades)
		}

		// 通知模块
		notifications := authorized.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}
	}

	return r
}
