package notifmock

import (
	"context"
	"sync"

	domain "declatogo-backend/internal/domain/notification"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies notification.Repository.
// Created records are also collected so tests can assert fan-out counts.
type Repo struct {
	mu      sync.Mutex
	Created []domain.Notification

	CreateFn              func(ctx context.Context, n *domain.Notification) error
	GetByNotificationIDFn func(ctx context.Context, notificationID string) (*domain.Notification, error)
	ListByOwnerFn         func(ctx context.Context, ownerID string, unreadOnly bool) ([]domain.Notification, error)
	MarkReadFn            func(ctx context.Context, id uint64) error
	MarkAllReadFn         func(ctx context.Context, ownerID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		if err := m.CreateFn(ctx, n); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.Created = append(m.Created, *n)
	m.mu.Unlock()
	return nil
}

// CreatedFor returns the collected notifications addressed to ownerID.
func (m *Repo) CreatedFor(ownerID string) []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Notification
	for _, n := range m.Created {
		if n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	return out
}

func (m *Repo) GetByNotificationID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	if m.GetByNotificationIDFn != nil {
		return m.GetByNotificationIDFn(ctx, notificationID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByOwner(ctx context.Context, ownerID string, unreadOnly bool) ([]domain.Notification, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID, unreadOnly)
	}
	return nil, nil
}

func (m *Repo) MarkRead(ctx context.Context, id uint64) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id)
	}
	return nil
}

func (m *Repo) MarkAllRead(ctx context.Context, ownerID string) (int64, error) {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, ownerID)
	}
	return 0, nil
}
