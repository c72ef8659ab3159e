package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByNotificationID(ctx context.Context, notificationID string) (*Notification, error)
	ListByOwner(ctx context.Context, ownerID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id uint64) error
	// MarkAllRead returns the number of notifications flipped.
	MarkAllRead(ctx context.Context, ownerID string) (int64, error)
}
