package notification_test

import (
	"context"
	"errors"
	"testing"

	. "declatogo-backend/internal/usecase/notification"

	notifDomain "declatogo-backend/internal/domain/notification"
	"declatogo-backend/internal/testutil/notifmock"

	"gorm.io/gorm"
)

func TestMarkRead_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	marked := []uint64{}
	repo := &notifmock.Repo{
		GetByNotificationIDFn: func(ctx context.Context, notificationID string) (*notifDomain.Notification, error) {
			return &notifDomain.Notification{ID: 7, NotificationID: notificationID, OwnerID: loserID}, nil
		},
		MarkReadFn: func(ctx context.Context, id uint64) error {
			marked = append(marked, id)
			return nil
		},
	}
	u := NewUsecase(repo)

	if err := u.MarkRead(ctx, loserID, "n1"); err != nil {
		t.Fatalf("recipient MarkRead err: %v", err)
	}
	if len(marked) != 1 || marked[0] != 7 {
		t.Fatalf("want MarkRead(7), got %v", marked)
	}

	// another account cannot see, let alone flip, the notification
	if err := u.MarkRead(ctx, finderID, "n1"); !errors.Is(err, notifDomain.ErrNotFound) {
		t.Fatalf("foreign recipient must get not-found, got %v", err)
	}
	if len(marked) != 1 {
		t.Fatalf("no extra MarkRead call expected, got %v", marked)
	}
}

func TestMarkRead_UnknownNotification(t *testing.T) {
	ctx := context.Background()
	repo := &notifmock.Repo{
		GetByNotificationIDFn: func(context.Context, string) (*notifDomain.Notification, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	u := NewUsecase(repo)

	if err := u.MarkRead(ctx, loserID, "missing"); !errors.Is(err, notifDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListAndUnread(t *testing.T) {
	ctx := context.Background()
	repo := &notifmock.Repo{
		ListByOwnerFn: func(ctx context.Context, ownerID string, unreadOnly bool) ([]notifDomain.Notification, error) {
			rows := []notifDomain.Notification{
				{NotificationID: "n1", OwnerID: ownerID, Category: notifDomain.CategoryMatch, Read: false},
				{NotificationID: "n2", OwnerID: ownerID, Category: notifDomain.CategoryInfo, Read: true},
			}
			if unreadOnly {
				return rows[:1], nil
			}
			return rows, nil
		},
	}
	u := NewUsecase(repo)

	all, err := u.List(ctx, loserID)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(all) != 2 || all[0].Category != "MATCH" {
		t.Fatalf("unexpected list: %+v", all)
	}

	unread, err := u.Unread(ctx, loserID)
	if err != nil {
		t.Fatalf("Unread err: %v", err)
	}
	if len(unread) != 1 || unread[0].NotificationID != "n1" {
		t.Fatalf("unexpected unread list: %+v", unread)
	}
}
