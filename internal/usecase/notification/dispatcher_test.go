package notification_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	. "declatogo-backend/internal/usecase/notification"

	declDomain "declatogo-backend/internal/domain/declaration"
	notifDomain "declatogo-backend/internal/domain/notification"
	ownerDomain "declatogo-backend/internal/domain/owner"
	"declatogo-backend/internal/testutil/mailmock"
	"declatogo-backend/internal/testutil/notifmock"
	"declatogo-backend/internal/testutil/ownermock"
)

const (
	loserID  = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	finderID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func knownOwners() *ownermock.Directory {
	return &ownermock.Directory{Owners: map[string]*ownerDomain.Owner{
		loserID:  {OwnerID: loserID, Email: "ama@example.tg", FullName: "Ama Koffi"},
		finderID: {OwnerID: finderID, Email: "kossi@example.tg", FullName: "Kossi Akakpo"},
	}}
}

func lostParty() *declDomain.Declaration {
	return &declDomain.Declaration{
		ID: 1, ReceiptNumber: "PERTE-2024-00001", Type: declDomain.TypeLost,
		PieceNumber: "TG001", NameOnPiece: "KOFFI Ama", OwnerID: loserID,
		Status: declDomain.StatusMatched,
	}
}

func foundParty() *declDomain.Declaration {
	return &declDomain.Declaration{
		ID: 2, ReceiptNumber: "TROUV-2024-00001", Type: declDomain.TypeFound,
		PieceNumber: "TG001", NameOnPiece: "KOFFI Ama", OwnerID: finderID,
		Status: declDomain.StatusMatched,
	}
}

func TestNotifyMatch_PersistsAndEnqueues(t *testing.T) {
	ctx := context.Background()
	notifs := &notifmock.Repo{}
	mail := &mailmock.Enqueuer{}
	d := NewDispatcher(notifs, knownOwners(), mail)

	if err := d.NotifyMatch(ctx, lostParty(), foundParty()); err != nil {
		t.Fatalf("NotifyMatch err: %v", err)
	}

	got := notifs.CreatedFor(loserID)
	if len(got) != 1 {
		t.Fatalf("want 1 in-app notification for the loser, got %d", len(got))
	}
	if got[0].Category != notifDomain.CategoryMatch {
		t.Fatalf("category = %s, want MATCH", got[0].Category)
	}
	if !strings.Contains(got[0].Body, "TROUV-2024-00001") {
		t.Fatalf("body must name the counterpart receipt, got %q", got[0].Body)
	}

	if n := mail.SentTo("ama@example.tg"); n != 1 {
		t.Fatalf("want 1 email job for the loser, got %d", n)
	}
	job := mail.Jobs[0]
	if job.Kind != EmailKindMatch || job.OwnReceipt != "PERTE-2024-00001" || job.MatchReceipt != "TROUV-2024-00001" {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestNotifyMatch_EmailFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	notifs := &notifmock.Repo{}
	mail := &mailmock.Enqueuer{Err: errors.New("redis down")}
	d := NewDispatcher(notifs, knownOwners(), mail)

	if err := d.NotifyMatch(ctx, lostParty(), foundParty()); err != nil {
		t.Fatalf("a broken email channel must not fail the dispatch: %v", err)
	}
	if len(notifs.CreatedFor(loserID)) != 1 {
		t.Fatal("in-app notification must survive the email failure")
	}
}

func TestNotifyMatch_NotificationFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("insert failed")
	notifs := &notifmock.Repo{
		CreateFn: func(context.Context, *notifDomain.Notification) error {
			return sentinel
		},
	}
	mail := &mailmock.Enqueuer{}
	d := NewDispatcher(notifs, knownOwners(), mail)

	if err := d.NotifyMatch(ctx, lostParty(), foundParty()); !errors.Is(err, sentinel) {
		t.Fatalf("notification errors must surface, got %v", err)
	}
	// the email channel still got its chance
	if len(mail.Jobs) != 1 {
		t.Fatalf("email must still be enqueued, got %d jobs", len(mail.Jobs))
	}
}

func TestNotifyMatch_UnknownOwnerSkipsEmail(t *testing.T) {
	ctx := context.Background()
	notifs := &notifmock.Repo{}
	mail := &mailmock.Enqueuer{}
	d := NewDispatcher(notifs, &ownermock.Directory{}, mail)

	if err := d.NotifyMatch(ctx, lostParty(), foundParty()); err != nil {
		t.Fatalf("NotifyMatch err: %v", err)
	}
	if len(notifs.CreatedFor(loserID)) != 1 {
		t.Fatal("in-app notification does not depend on the owner record")
	}
	if len(mail.Jobs) != 0 {
		t.Fatalf("no owner record, no email — got %d jobs", len(mail.Jobs))
	}
}

func TestNotifyMatch_EmptyEmailSkipsEmail(t *testing.T) {
	ctx := context.Background()
	owners := &ownermock.Directory{Owners: map[string]*ownerDomain.Owner{
		loserID: {OwnerID: loserID, Email: "", Username: "ama"},
	}}
	mail := &mailmock.Enqueuer{}
	d := NewDispatcher(&notifmock.Repo{}, owners, mail)

	if err := d.NotifyMatch(ctx, lostParty(), foundParty()); err != nil {
		t.Fatalf("NotifyMatch err: %v", err)
	}
	if len(mail.Jobs) != 0 {
		t.Fatalf("blank address must be skipped, got %d jobs", len(mail.Jobs))
	}
}

func TestNotifyReturned_BothParties(t *testing.T) {
	ctx := context.Background()
	notifs := &notifmock.Repo{}
	mail := &mailmock.Enqueuer{}
	d := NewDispatcher(notifs, knownOwners(), mail)

	lost, found := lostParty(), foundParty()
	lost.Status, found.Status = declDomain.StatusReturned, declDomain.StatusMatched

	d.NotifyReturned(ctx, lost, found, "Remise effectuée au commissariat central")

	if len(notifs.CreatedFor(loserID)) != 1 || len(notifs.CreatedFor(finderID)) != 1 {
		t.Fatalf("each party gets one notification, got loser=%d finder=%d",
			len(notifs.CreatedFor(loserID)), len(notifs.CreatedFor(finderID)))
	}
	for _, n := range notifs.Created {
		if n.Category != notifDomain.CategoryStatusChange {
			t.Fatalf("category = %s, want STATUS_CHANGE", n.Category)
		}
		if !strings.Contains(n.Body, "Remise effectuée") {
			t.Fatalf("remarks must reach the body, got %q", n.Body)
		}
	}
	if mail.SentTo("ama@example.tg") != 1 || mail.SentTo("kossi@example.tg") != 1 {
		t.Fatalf("each party gets one email, got %+v", mail.Jobs)
	}
	for _, j := range mail.Jobs {
		if j.Kind != EmailKindReturned {
			t.Fatalf("kind = %s, want returned", j.Kind)
		}
	}
}

func TestNotifyReturned_SinglePartyWithoutCounterpart(t *testing.T) {
	ctx := context.Background()
	notifs := &notifmock.Repo{}
	mail := &mailmock.Enqueuer{}
	d := NewDispatcher(notifs, knownOwners(), mail)

	d.NotifyReturned(ctx, lostParty(), nil, "")

	if len(notifs.Created) != 1 {
		t.Fatalf("unmatched return notifies only its declarant, got %d", len(notifs.Created))
	}
	if len(mail.Jobs) != 1 || mail.Jobs[0].MatchReceipt != "" {
		t.Fatalf("no counterpart data expected, got %+v", mail.Jobs)
	}
}

func TestNotifyReturned_OnePartysFailureNeverBlocksTheOther(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("insert failed")
	notifs := &notifmock.Repo{
		CreateFn: func(ctx context.Context, n *notifDomain.Notification) error {
			if n.OwnerID == loserID {
				return sentinel
			}
			return nil
		},
	}
	mail := &mailmock.Enqueuer{}
	d := NewDispatcher(notifs, knownOwners(), mail)

	d.NotifyReturned(ctx, lostParty(), foundParty(), "")

	if len(notifs.CreatedFor(finderID)) != 1 {
		t.Fatal("counterpart must still be notified when the first party fails")
	}
}
