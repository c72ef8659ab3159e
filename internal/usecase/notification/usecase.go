package notification

import (
	"context"
	"errors"
	"time"

	notifDomain "declatogo-backend/internal/domain/notification"

	"gorm.io/gorm"
)

// Usecase is the recipient-facing side: list and mark-read. Creation goes
// through the Dispatcher or the declaration status flow, never through
// here.
type Usecase struct{ repo notifDomain.Repository }

func NewUsecase(r notifDomain.Repository) *Usecase { return &Usecase{repo: r} }

type NotificationDTO struct {
	NotificationID string    `json:"notification_id"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

func toDTO(n notifDomain.Notification) NotificationDTO {
	return NotificationDTO{
		NotificationID: n.NotificationID,
		Category:       string(n.Category),
		Title:          n.Title,
		Body:           n.Body,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

func (u *Usecase) List(ctx context.Context, ownerID string) ([]NotificationDTO, error) {
	return u.list(ctx, ownerID, false)
}

func (u *Usecase) Unread(ctx context.Context, ownerID string) ([]NotificationDTO, error) {
	return u.list(ctx, ownerID, true)
}

func (u *Usecase) list(ctx context.Context, ownerID string, unreadOnly bool) ([]NotificationDTO, error) {
	rows, err := u.repo.ListByOwner(ctx, ownerID, unreadOnly)
	if err != nil {
		return nil, err
	}
	out := make([]NotificationDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, toDTO(n))
	}
	return out, nil
}

// MarkRead flips the read flag; only the recipient may do it.
func (u *Usecase) MarkRead(ctx context.Context, ownerID, notificationID string) error {
	n, err := u.repo.GetByNotificationID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notifDomain.ErrNotFound
		}
		return err
	}
	if n.OwnerID != ownerID {
		return notifDomain.ErrNotFound
	}
	return u.repo.MarkRead(ctx, n.ID)
}

func (u *Usecase) MarkAllRead(ctx context.Context, ownerID string) (int64, error) {
	return u.repo.MarkAllRead(ctx, ownerID)
}
