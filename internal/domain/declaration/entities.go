package declaration

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Type string

const (
	TypeLost  Type = "LOST"
	TypeFound Type = "FOUND"
)

// Opposite returns the counterpart type the matching engine searches for.
func (t Type) Opposite() Type {
	if t == TypeLost {
		return TypeFound
	}
	return TypeLost
}

// ReceiptPrefix is the persisted external contract: PERTE for losses,
// TROUV for finds.
func (t Type) ReceiptPrefix() string {
	if t == TypeLost {
		return "PERTE"
	}
	return "TROUV"
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusValidated Status = "VALIDATED"
	StatusMatched   Status = "MATCHED"
	StatusReturned  Status = "RETURNED"
	StatusRejected  Status = "REJECTED"
	StatusClosed    Status = "CLOSED"
)

// PieceNumberUnknown is the sentinel stored when the declarant does not
// know the document number.
const PieceNumberUnknown = "NC"

// transitions encodes the lifecycle: PENDING → VALIDATED → MATCHED →
// RETURNED → CLOSED, with REJECTED terminal from PENDING or VALIDATED.
// Staff may also return a matched/validated piece directly.
var transitions = map[Status][]Status{
	StatusPending:   {StatusValidated, StatusRejected},
	StatusValidated: {StatusMatched, StatusReturned, StatusRejected},
	StatusMatched:   {StatusReturned, StatusClosed},
	StatusReturned:  {StatusClosed},
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusValidated, StatusMatched, StatusReturned, StatusRejected, StatusClosed:
		return true
	}
	return false
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Declaration struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	DeclarationID string `gorm:"size:32;uniqueIndex:ux_declarations_public_id" json:"declaration_id"`
	ReceiptNumber string `gorm:"size:50;uniqueIndex:ux_declarations_receipt" json:"receipt_number"`

	Type         Type   `gorm:"type:enum('LOST','FOUND');index:idx_declarations_piece_type,priority:2" json:"type"`
	CategoryCode string `gorm:"size:50;index" json:"category_code"`

	PieceNumber string     `gorm:"size:100;index:idx_declarations_piece_type,priority:1" json:"piece_number"`
	NameOnPiece string     `gorm:"size:200" json:"name_on_piece"`
	LastName    string     `gorm:"size:100" json:"last_name,omitempty"`
	FirstName   string     `gorm:"size:100" json:"first_name,omitempty"`
	BirthDate   *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	BirthPlace  string     `gorm:"size:200" json:"birth_place,omitempty"`
	Profession  string     `gorm:"size:100" json:"profession,omitempty"`

	Description string     `gorm:"type:text" json:"description,omitempty"`
	Location    string     `gorm:"size:300" json:"location,omitempty"`
	OccurredOn  *time.Time `gorm:"type:date" json:"occurred_on,omitempty"`
	PhotoURL    string     `gorm:"type:text" json:"photo_url,omitempty"`
	Latitude    *float64   `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude   *float64   `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`

	Status          Status    `gorm:"type:enum('PENDING','VALIDATED','MATCHED','RETURNED','REJECTED','CLOSED');default:'PENDING';index:idx_declarations_status_created,priority:1" json:"status"`
	StatusUpdatedAt time.Time `gorm:"autoCreateTime" json:"status_updated_at"`

	// MatchedID is a non-owning cross-reference to the counterpart
	// declaration. Deleting either side nulls it, never cascades.
	MatchedID *uint64 `gorm:"index;constraint:OnDelete:SET NULL" json:"-"`

	OwnerID    string `gorm:"size:32;index:idx_declarations_owner_active" json:"owner_id"`
	AdminNotes string `gorm:"type:text" json:"admin_notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_declarations_status_created,priority:2" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Declaration) TableName() string { return "declarations" }

// Matchable reports whether the automatic engine may consider this
// declaration at all: validated, not yet linked, with a usable number.
func (d *Declaration) Matchable() bool {
	return d.Status == StatusValidated && d.MatchedID == nil && d.PieceNumber != PieceNumberUnknown
}

// NormalizePieceNumber upper-cases the document number; blank input maps
// to the NC sentinel.
func NormalizePieceNumber(raw string) string {
	n := strings.ToUpper(strings.TrimSpace(raw))
	if n == "" {
		return PieceNumberUnknown
	}
	return n
}

// DeriveNameOnPiece falls back to "LASTNAME Firstname" when the declarant
// did not copy the name printed on the document, NC when nothing is known.
func DeriveNameOnPiece(nameOnPiece, lastName, firstName string) string {
	if n := strings.TrimSpace(nameOnPiece); n != "" {
		return n
	}
	n := strings.TrimSpace(strings.ToUpper(strings.TrimSpace(lastName)) + " " + strings.TrimSpace(firstName))
	if n == "" {
		return PieceNumberUnknown
	}
	return n
}

// FormatReceiptNumber renders the persisted contract
// {PERTE|TROUV}-{YYYY}-{SEQ:05d}; seq is scoped per (type, year).
func FormatReceiptNumber(t Type, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%05d", t.ReceiptPrefix(), year, seq)
}
