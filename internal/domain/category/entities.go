package category

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("category not found")

// Category is the static reference taxonomy of administrative documents.
// Managed externally; the core reads it only.
type Category struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Code        string `gorm:"column:code;size:50;uniqueIndex:ux_categories_code" json:"code"`
	Label       string `gorm:"column:label;size:100;not null" json:"label"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Icon        string `gorm:"column:icon;size:50" json:"icon,omitempty"`
	Active      bool   `gorm:"column:active;default:true" json:"active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Category) TableName() string { return "categories" }

// Seed is the bootstrap taxonomy loaded when the table is empty.
func Seed() []Category {
	return []Category{
		{Code: "identity", Label: "Pièce d'identité", Icon: "id-card"},
		{Code: "vehicle", Label: "Véhicule", Icon: "car"},
		{Code: "academic", Label: "Scolaire / Diplôme", Icon: "graduation-cap"},
		{Code: "banking", Label: "Bancaire", Icon: "credit-card"},
		{Code: "professional", Label: "Professionnelle", Icon: "briefcase"},
		{Code: "health", Label: "Santé", Icon: "notes-medical"},
		{Code: "other", Label: "Autre", Icon: "file"},
	}
}
