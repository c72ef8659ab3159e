package notification

import (
	"context"
	"fmt"
	"strings"
)

// EmailKind distinguishes the two dispatcher flows.
type EmailKind string

const (
	EmailKindMatch    EmailKind = "match"
	EmailKindReturned EmailKind = "returned"
)

// EmailJob is everything the delivery worker needs to render and send one
// message. It crosses the queue as JSON, so no entity pointers here.
type EmailJob struct {
	To            string    `json:"to"`
	RecipientName string    `json:"recipient_name"`
	Kind          EmailKind `json:"kind"`

	OwnReceipt  string `json:"own_receipt"`
	OwnType     string `json:"own_type"`
	PieceNumber string `json:"piece_number"`
	NameOnPiece string `json:"name_on_piece"`

	MatchReceipt string `json:"match_receipt,omitempty"`
	MatchType    string `json:"match_type,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
}

// EmailEnqueuer hands a job to the delivery channel (queue in production,
// mock in tests). Implementations must not block on SMTP.
type EmailEnqueuer interface {
	Enqueue(ctx context.Context, job EmailJob) error
}

func (j EmailJob) Subject() string {
	switch j.Kind {
	case EmailKindReturned:
		return fmt.Sprintf("DéclaTogo — Pièce restituée (%s)", j.OwnReceipt)
	default:
		return fmt.Sprintf("DéclaTogo — Correspondance trouvée (%s)", j.OwnReceipt)
	}
}

// PlainBody renders the text alternative.
func (j EmailJob) PlainBody() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bonjour %s,\n\n", j.RecipientName)
	switch j.Kind {
	case EmailKindReturned:
		fmt.Fprintf(&b, "Votre déclaration %s (%s — %s) est marquée comme restituée.\n",
			j.OwnReceipt, j.PieceNumber, j.NameOnPiece)
	default:
		if j.OwnType == "LOST" {
			fmt.Fprintf(&b, "Votre déclaration de perte %s (%s — %s) correspond à une trouvaille enregistrée sous le numéro %s.\n",
				j.OwnReceipt, j.PieceNumber, j.NameOnPiece, j.MatchReceipt)
		} else {
			fmt.Fprintf(&b, "La trouvaille que vous avez déclarée sous %s (%s — %s) correspond à une déclaration de perte %s.\n",
				j.OwnReceipt, j.PieceNumber, j.NameOnPiece, j.MatchReceipt)
		}
		b.WriteString("Présentez les deux récépissés au commissariat pour la restitution.\n")
	}
	if j.Remarks != "" {
		fmt.Fprintf(&b, "\nMessage du service : %s\n", j.Remarks)
	}
	b.WriteString("\nDéclaTogo — Plateforme officielle\n")
	return b.String()
}

// HTMLBody is a minimal HTML alternative; full templating is out of scope.
func (j EmailJob) HTMLBody() string {
	body := strings.ReplaceAll(j.PlainBody(), "\n", "<br>")
	return "<html><body style=\"font-family:Arial,sans-serif\">" + body + "</body></html>"
}
