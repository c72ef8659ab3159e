package declaration

import "context"

// ListFilter narrows List; zero values mean "any".
type ListFilter struct {
	Type    Type
	Status  Status
	OwnerID string
}

// SearchQuery is the manual staff/citizen search over validated FOUND
// declarations (contains-match, distinct from the automatic engine).
type SearchQuery struct {
	PieceNumber  string
	NameOnPiece  string
	LastName     string
	FirstName    string
	CategoryCode string
}

func (q SearchQuery) Empty() bool {
	return q.PieceNumber == "" && q.NameOnPiece == "" && q.LastName == "" &&
		q.FirstName == "" && q.CategoryCode == ""
}

// Stats are per-type and per-status counters for the staff dashboard.
type Stats struct {
	Total     int64 `json:"total"`
	Lost      int64 `json:"lost"`
	Found     int64 `json:"found"`
	Pending   int64 `json:"pending"`
	Validated int64 `json:"validated"`
	Matched   int64 `json:"matched"`
	Returned  int64 `json:"returned"`
}

type Repository interface {
	Create(ctx context.Context, d *Declaration) error
	GetByDeclarationID(ctx context.Context, declarationID string) (*Declaration, error)
	// GetByIDForUpdate locks the row (SELECT ... FOR UPDATE) when called
	// inside a transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Declaration, error)
	Save(ctx context.Context, d *Declaration) error
	SoftDelete(ctx context.Context, d *Declaration, deletedBy string) error

	// CountByTypeInYear counts all declarations of the given type created
	// in the given year, soft-deleted rows included — receipt sequences
	// are never reassigned.
	CountByTypeInYear(ctx context.Context, t Type, year int) (int64, error)

	// FindMatchCandidate returns the newest validated, unmatched
	// declaration of the given type whose piece number equals pieceNumber
	// (already normalized), excluding excludeID. Nil without error when
	// there is none.
	FindMatchCandidate(ctx context.Context, t Type, pieceNumber string, excludeID uint64) (*Declaration, error)

	// UpdateMatchFields is a targeted partial update of matched_id and
	// status; it must not run save hooks or re-trigger the engine.
	UpdateMatchFields(ctx context.Context, id uint64, matchedID uint64, status Status) error

	// ClearMatchReference nulls matched_id on whichever row points at id.
	ClearMatchReference(ctx context.Context, id uint64) error

	List(ctx context.Context, f ListFilter) ([]Declaration, error)
	Search(ctx context.Context, q SearchQuery) ([]Declaration, error)
	Stats(ctx context.Context) (*Stats, error)
}
