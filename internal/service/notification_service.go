package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Daza111111/axx/internal/dto"
	"github.com/Daza111111/axx/internal/model"
	"github.com/Daza111111/axx/internal/repository"
)

// ── 通知模块业务错误 ──

var (
	ErrNotificationNotFound = errors.New("通知不存在")
	ErrNotNotificationOwner = errors.New("无权操作该通知")
)

// listNotificationLimit 轮询接口单次返回的最大通知数
const listNotificationLimit = 100

// GradeChangeEvent 成绩变更事件（由 GradeService 在成绩事务提交后发出）
type GradeChangeEvent struct {
	StudentID  string
	CourseName string
	Corte      int
	Value      float64
	// FinalGradeSet 表示本次写入补齐了第三个 corte，期末总评已生成
	FinalGradeSet bool
	FinalGrade    float64
}

// NotificationService 通知业务接口
//
// 设计说明：
//   - 通知只由成绩写入触发创建，每次写入恰好追加一条，不去重不合并
//     （同一 corte 的反复修改各留一条，作为教师改分的留痕）
//   - 客户端轮询拉取，未读数为派生计数（COUNT 查询），不单独存储
type NotificationService interface {
	// OnGradeChanged 响应成绩变更，为受影响学生追加一条未读通知
	OnGradeChanged(ctx context.Context, evt GradeChangeEvent) error
	List(ctx context.Context, userID string) (*dto.NotificationFeedResponse, error)
	MarkRead(ctx context.Context, notificationID, callerID string) (*dto.NotificationResponse, error)
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

// ────────────────────── OnGradeChanged ──────────────────────

func (s *notificationService) OnGradeChanged(ctx context.Context, evt GradeChangeEvent) error {
	message := fmt.Sprintf("课程《%s》Corte %d 成绩已更新为 %.1f", evt.CourseName, evt.Corte, evt.Value)
	if evt.FinalGradeSet {
		message += fmt.Sprintf("，期末总评已生成：%.1f", evt.FinalGrade)
	}

	notification := &model.Notification{
		UserID:  evt.StudentID,
		Type:    model.NotificationTypeGradeUpdate,
		Message: message,
		IsRead:  false,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Error("创建成绩变更通知失败",
			zap.String("student_id", evt.StudentID),
			zap.Int("corte", evt.Corte),
			zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── List ──────────────────────

func (s *notificationService) List(ctx context.Context, userID string) (*dto.NotificationFeedResponse, error) {
	notifications, err := s.repo.Notification.ListByUser(ctx, userID, listNotificationLimit)
	if err != nil {
		s.logger.Error("查询通知列表失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	unread, err := s.repo.Notification.CountUnread(ctx, userID)
	if err != nil {
		s.logger.Error("统计未读通知失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, *s.toNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationFeedResponse{
		Items:       items,
		UnreadCount: unread,
	}, nil
}

// ────────────────────── MarkRead ──────────────────────

func (s *notificationService) MarkRead(ctx context.Context, notificationID, callerID string) (*dto.NotificationResponse, error) {
	notification, err := s.repo.Notification.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("查询通知失败", zap.String("id", notificationID), zap.Error(err))
		return nil, err
	}

	if notification.UserID != callerID {
		return nil, ErrNotNotificationOwner
	}

	// 重复标记已读按幂等成功处理，不报错
	if !notification.IsRead {
		notification.IsRead = true
		if err := s.repo.Notification.Update(ctx, notification); err != nil {
			s.logger.Error("标记通知已读失败", zap.String("id", notificationID), zap.Error(err))
			return nil, err
		}
	}

	return s.toNotificationResponse(notification), nil
}

// ── 内部辅助方法 ──

func (s *notificationService) toNotificationResponse(n *model.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.NotificationID,
		Type:      n.Type,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
