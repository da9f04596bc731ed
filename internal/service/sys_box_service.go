package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

const systemSenderName = "System"

type SysBoxService interface {
	GetNotificationList(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) ([]*dto.SysBoxDTO, error)
	GetUnreadCount(ctx context.Context, userID uint64) (*dto.SysBoxUnreadDTO, error)
	MarkRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllRead(ctx context.Context, userID uint64) error
}

type sysBoxServiceImpl struct {
	sysBoxRepo mongo.SysBoxRepo
}

func NewSysBoxService(sysBox mongo.SysBoxRepo) SysBoxService {
	return &sysBoxServiceImpl{
		sysBoxRepo: sysBox,
	}
}

// GetNotificationList 分页获取通知列表
func (s *sysBoxServiceImpl) GetNotificationList(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) ([]*dto.SysBoxDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	limit := int64(pageSize)
	offset := int64((page - 1) * pageSize)

	list, err := s.sysBoxRepo.GetNotificationList(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SysBoxDTO, 0, len(list))
	for _, m := range list {
		res = append(res, &dto.SysBoxDTO{
			ID:         m.ID.Hex(),
			SenderID:   m.SenderID,
			SenderName: systemSenderName,
			Type:       m.Type,
			TargetID:   m.TargetID,
			Content:    m.Content,
			Payload:    m.Payload,
			IsRead:     m.IsRead,
			CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return res, nil
}

// GetUnreadCount 获取未读数
func (s *sysBoxServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (*dto.SysBoxUnreadDTO, error) {
	count, err := s.sysBoxRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.SysBoxUnreadDTO{UnreadCount: count}, nil
}

// MarkRead 标记单条已读，只能操作自己的通知
func (s *sysBoxServiceImpl) MarkRead(ctx context.Context, userID uint64, msgID string) error {
	err := s.sysBoxRepo.MarkAsRead(ctx, userID, msgID)
	switch {
	case errors.Is(err, mongo.ErrInvalidID):
		return ErrParamInvalid
	case errors.Is(err, mongoDB.ErrNoDocuments):
		return ErrSysBoxNotFound
	}
	return err
}

// MarkAllRead 一键已读
func (s *sysBoxServiceImpl) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.sysBoxRepo.MarkAllAsRead(ctx, userID)
}
