package notification

import (
	"context"
	"fmt"
	"log"

	declDomain "declatogo-backend/internal/domain/declaration"
	notifDomain "declatogo-backend/internal/domain/notification"
	ownerDomain "declatogo-backend/internal/domain/owner"
	"declatogo-backend/pkg/id"
)

// Dispatcher fans a linking or restitution event out to the affected
// declarants: one persisted in-app notification plus one queued email per
// party. The two channels are independent — an email problem never undoes
// the notification record, and one party's failure never blocks the other.
type Dispatcher struct {
	notifs notifDomain.Repository
	owners ownerDomain.Directory
	mail   EmailEnqueuer
}

func NewDispatcher(notifs notifDomain.Repository, owners ownerDomain.Directory, mail EmailEnqueuer) *Dispatcher {
	return &Dispatcher{notifs: notifs, owners: owners, mail: mail}
}

// NotifyMatch tells one declarant that the automatic engine linked their
// declaration to matched. Called once per party by the matcher.
func (d *Dispatcher) NotifyMatch(ctx context.Context, own, matched *declDomain.Declaration) error {
	title, body := matchMessage(own, matched)
	return d.dispatch(ctx, own, matched, notifDomain.CategoryMatch, title, body, EmailKindMatch, "")
}

// NotifyReturned handles a transition into RETURNED: the declaration's own
// declarant always, the counterpart's declarant when a match is linked.
func (d *Dispatcher) NotifyReturned(ctx context.Context, decl, counterpart *declDomain.Declaration, remarks string) {
	if err := d.dispatchReturned(ctx, decl, counterpart, remarks); err != nil {
		log.Printf("dispatcher: returned notification for %s: %v", decl.ReceiptNumber, err)
	}
	if counterpart != nil && counterpart.OwnerID != decl.OwnerID {
		if err := d.dispatchReturned(ctx, counterpart, decl, remarks); err != nil {
			log.Printf("dispatcher: returned notification for %s: %v", counterpart.ReceiptNumber, err)
		}
	}
}

func (d *Dispatcher) dispatchReturned(ctx context.Context, own, matched *declDomain.Declaration, remarks string) error {
	title := fmt.Sprintf("Pièce restituée : %s", own.ReceiptNumber)
	body := fmt.Sprintf(
		"Votre déclaration %s (%s — %s) est passée au statut « Restitué au propriétaire ».",
		own.ReceiptNumber, own.PieceNumber, own.NameOnPiece)
	if remarks != "" {
		body += " " + remarks
	}
	return d.dispatch(ctx, own, matched, notifDomain.CategoryStatusChange, title, body, EmailKindReturned, remarks)
}

// dispatch persists the in-app notification, then enqueues the email.
// Returns the notification error only; email problems are logged and
// swallowed so they can never fail the triggering transaction.
func (d *Dispatcher) dispatch(ctx context.Context, own, matched *declDomain.Declaration,
	cat notifDomain.Category, title, body string, kind EmailKind, remarks string) error {

	declID := own.ID
	notifErr := d.notifs.Create(ctx, &notifDomain.Notification{
		NotificationID: id.NewID32(),
		OwnerID:        own.OwnerID,
		DeclarationID:  &declID,
		Category:       cat,
		Title:          title,
		Body:           body,
	})
	if notifErr != nil {
		log.Printf("dispatcher: create notification for %s: %v", own.ReceiptNumber, notifErr)
	}

	d.enqueueEmail(ctx, own, matched, kind, remarks)
	return notifErr
}

func (d *Dispatcher) enqueueEmail(ctx context.Context, own, matched *declDomain.Declaration, kind EmailKind, remarks string) {
	o, err := d.owners.GetByOwnerID(ctx, own.OwnerID)
	if err != nil {
		log.Printf("dispatcher: no owner record for %s, email skipped: %v", own.OwnerID, err)
		return
	}
	if o.Email == "" {
		log.Printf("dispatcher: owner %s has no email address, email skipped", o.OwnerID)
		return
	}

	name := o.FullName
	if name == "" {
		name = o.Username
	}
	job := EmailJob{
		To:            o.Email,
		RecipientName: name,
		Kind:          kind,
		OwnReceipt:    own.ReceiptNumber,
		OwnType:       string(own.Type),
		PieceNumber:   own.PieceNumber,
		NameOnPiece:   own.NameOnPiece,
		Remarks:       remarks,
	}
	if matched != nil {
		job.MatchReceipt = matched.ReceiptNumber
		job.MatchType = string(matched.Type)
	}
	if err := d.mail.Enqueue(ctx, job); err != nil {
		log.Printf("dispatcher: enqueue email to %s for %s: %v", o.Email, own.ReceiptNumber, err)
	}
}

func matchMessage(own, matched *declDomain.Declaration) (title, body string) {
	if own.Type == declDomain.TypeLost {
		title = "Bonne nouvelle ! Votre pièce a peut-être été retrouvée"
		body = fmt.Sprintf(
			"Votre déclaration de perte « %s » (%s — %s) correspond à une trouvaille enregistrée sous le numéro « %s ». "+
				"Veuillez contacter le commissariat pour la restitution.",
			own.ReceiptNumber, own.PieceNumber, own.NameOnPiece, matched.ReceiptNumber)
		return
	}
	title = "Une pièce que vous avez trouvée a un propriétaire"
	body = fmt.Sprintf(
		"La trouvaille que vous avez déclarée sous « %s » (%s — %s) correspond à une déclaration de perte « %s ». "+
			"Merci de vous rapprocher du commissariat pour la restitution.",
		own.ReceiptNumber, own.PieceNumber, own.NameOnPiece, matched.ReceiptNumber)
	return
}
