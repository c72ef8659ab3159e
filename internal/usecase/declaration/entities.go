package declaration

import (
	"time"

	declDomain "declatogo-backend/internal/domain/declaration"
)

type CreateInput struct {
	OwnerID      string `json:"owner_id"`
	Type         string `json:"type"`
	CategoryCode string `json:"category_code"`

	PieceNumber string     `json:"piece_number"`
	NameOnPiece string     `json:"name_on_piece"`
	LastName    string     `json:"last_name"`
	FirstName   string     `json:"first_name"`
	BirthDate   *time.Time `json:"birth_date"`
	BirthPlace  string     `json:"birth_place"`
	Profession  string     `json:"profession"`

	Description string     `json:"description"`
	Location    string     `json:"location"`
	OccurredOn  *time.Time `json:"occurred_on"`
	PhotoURL    string     `json:"photo_url"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
}

type ChangeStatusInput struct {
	DeclarationID string
	NewStatus     string
	Remarks       string
	ActorID       string // staff account performing the change
}

type SearchInput struct {
	PieceNumber  string `json:"piece_number"`
	NameOnPiece  string `json:"name_on_piece"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	CategoryCode string `json:"category_code"`
}

type DeclarationDTO struct {
	DeclarationID string `json:"declaration_id"`
	ReceiptNumber string `json:"receipt_number"`
	Type          string `json:"type"`
	CategoryCode  string `json:"category_code"`
	PieceNumber   string `json:"piece_number"`
	NameOnPiece   string `json:"name_on_piece"`
	Status        string `json:"status"`
	HasMatch      bool   `json:"has_match"`

	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	OccurredOn  *time.Time `json:"occurred_on,omitempty"`
	AdminNotes  string     `json:"admin_notes,omitempty"`

	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(d *declDomain.Declaration) *DeclarationDTO {
	return &DeclarationDTO{
		DeclarationID: d.DeclarationID,
		ReceiptNumber: d.ReceiptNumber,
		Type:          string(d.Type),
		CategoryCode:  d.CategoryCode,
		PieceNumber:   d.PieceNumber,
		NameOnPiece:   d.NameOnPiece,
		Status:        string(d.Status),
		HasMatch:      d.MatchedID != nil,
		Description:   d.Description,
		Location:      d.Location,
		OccurredOn:    d.OccurredOn,
		AdminNotes:    d.AdminNotes,
		OwnerID:       d.OwnerID,
		CreatedAt:     d.CreatedAt,
	}
}
