package mysql

import (
	"context"

	notifDomain "declatogo-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notifDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) GetByNotificationID(ctx context.Context, notificationID string) (*notifDomain.Notification, error) {
	var out notifDomain.Notification
	res := r.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		First(&out)
	return &out, res.Error
}

func (r *NotificationRepository) ListByOwner(ctx context.Context, ownerID string, unreadOnly bool) ([]notifDomain.Notification, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if unreadOnly {
		q = q.Where("read_flag = ?", false)
	}
	var out []notifDomain.Notification
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&notifDomain.Notification{}).
		Where("id = ?", id).
		Update("read_flag", true).Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&notifDomain.Notification{}).
		Where("owner_id = ? AND read_flag = ?", ownerID, false).
		Update("read_flag", true)
	return res.RowsAffected, res.Error
}
