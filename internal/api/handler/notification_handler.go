package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Daza111111/axx/internal/service"
	"github.com/Daza111111/axx/pkg/response"
)

// NotificationHandler 通知模块 HTTP 处理器
type NotificationHandler struct {
	notifSvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notifSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifSvc: notifSvc}
}

// List 当前用户通知列表与未读数
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	feed, err := h.notifSvc.List(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, feed)
}

// MarkRead 标记单条通知已读（仅本人）
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	notif, err := h.notifSvc.MarkRead(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotificationNotFound):
			response.NotFound(c, 33001, "通知不存在")
		case errors.Is(err, service.ErrNotNotificationOwner):
			response.Forbidden(c, 33002, "无权操作该通知")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, notif)
}
