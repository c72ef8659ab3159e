package mysql

import (
	"context"
	"errors"
	"time"

	declDomain "declatogo-backend/internal/domain/declaration"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeclarationRepository struct{ db *gorm.DB }

func NewDeclarationRepository(db *gorm.DB) *DeclarationRepository {
	return &DeclarationRepository{db: db}
}

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *DeclarationRepository) Tx(ctx context.Context, fn func(repo declDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DeclarationRepository{db: tx})
	})
}

func (r *DeclarationRepository) Create(ctx context.Context, d *declDomain.Declaration) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DeclarationRepository) Save(ctx context.Context, d *declDomain.Declaration) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DeclarationRepository) GetByDeclarationID(ctx context.Context, declarationID string) (*declDomain.Declaration, error) {
	var out declDomain.Declaration
	res := r.db.WithContext(ctx).Where("declaration_id = ?", declarationID).First(&out)
	return &out, res.Error
}

func (r *DeclarationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*declDomain.Declaration, error) {
	var out declDomain.Declaration
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *DeclarationRepository) getByDeclarationIDForUpdate(ctx context.Context, declarationID string) (*declDomain.Declaration, error) {
	var out declDomain.Declaration
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("declaration_id = ?", declarationID).
		First(&out)
	return &out, res.Error
}

func (r *DeclarationRepository) SoftDelete(ctx context.Context, d *declDomain.Declaration, deletedBy string) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Model(&declDomain.Declaration{}).
		Where("id = ?", d.ID).
		UpdateColumn("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return tx.Delete(&declDomain.Declaration{}, d.ID).Error
}

// CountByTypeInYear includes soft-deleted rows: receipt sequences must
// never be reassigned after a delete.
func (r *DeclarationRepository) CountByTypeInYear(ctx context.Context, t declDomain.Type, year int) (int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	var n int64
	res := r.db.WithContext(ctx).Unscoped().
		Model(&declDomain.Declaration{}).
		Where("type = ? AND created_at >= ? AND created_at < ?", t, start, end).
		Count(&n)
	return n, res.Error
}

// FindMatchCandidate implements the automatic engine's query: opposite
// side already filtered by the caller via t; validated, unmatched, equal
// piece number (case-insensitive via UPPER), excluding the subject, newest
// filing first.
func (r *DeclarationRepository) FindMatchCandidate(ctx context.Context, t declDomain.Type, pieceNumber string, excludeID uint64) (*declDomain.Declaration, error) {
	var out declDomain.Declaration
	res := r.db.WithContext(ctx).
		Where("type = ? AND status = ? AND matched_id IS NULL AND UPPER(piece_number) = UPPER(?) AND id <> ?",
			t, declDomain.StatusValidated, pieceNumber, excludeID).
		Order("created_at DESC, id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// UpdateMatchFields writes matched_id and status directly, bypassing gorm
// hooks and full-row saves so the engine cannot re-trigger itself.
func (r *DeclarationRepository) UpdateMatchFields(ctx context.Context, id uint64, matchedID uint64, status declDomain.Status) error {
	return r.db.WithContext(ctx).
		Model(&declDomain.Declaration{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"matched_id":        matchedID,
			"status":            status,
			"status_updated_at": time.Now().UTC(),
		}).Error
}

func (r *DeclarationRepository) ClearMatchReference(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&declDomain.Declaration{}).
		Where("matched_id = ?", id).
		UpdateColumn("matched_id", nil).Error
}

func (r *DeclarationRepository) List(ctx context.Context, f declDomain.ListFilter) ([]declDomain.Declaration, error) {
	q := r.db.WithContext(ctx).Model(&declDomain.Declaration{})
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	var out []declDomain.Declaration
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// Search is the manual lookup over validated FOUND declarations
// (contains-match); unrelated to the automatic exact-match engine.
func (r *DeclarationRepository) Search(ctx context.Context, sq declDomain.SearchQuery) ([]declDomain.Declaration, error) {
	q := r.db.WithContext(ctx).Model(&declDomain.Declaration{}).
		Where("type = ? AND status = ?", declDomain.TypeFound, declDomain.StatusValidated)
	if sq.PieceNumber != "" {
		q = q.Where("piece_number LIKE ?", "%"+declDomain.NormalizePieceNumber(sq.PieceNumber)+"%")
	}
	if sq.LastName != "" {
		q = q.Where("(last_name LIKE ? OR name_on_piece LIKE ?)", "%"+sq.LastName+"%", "%"+sq.LastName+"%")
	}
	if sq.FirstName != "" {
		q = q.Where("(first_name LIKE ? OR name_on_piece LIKE ?)", "%"+sq.FirstName+"%", "%"+sq.FirstName+"%")
	}
	if sq.NameOnPiece != "" && sq.LastName == "" && sq.FirstName == "" {
		q = q.Where("name_on_piece LIKE ?", "%"+sq.NameOnPiece+"%")
	}
	if sq.CategoryCode != "" {
		q = q.Where("category_code = ?", sq.CategoryCode)
	}
	var out []declDomain.Declaration
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *DeclarationRepository) count(ctx context.Context, dst *int64, query string, args ...any) error {
	q := r.db.WithContext(ctx).Model(&declDomain.Declaration{})
	if query != "" {
		q = q.Where(query, args...)
	}
	return q.Count(dst).Error
}

func (r *DeclarationRepository) Stats(ctx context.Context) (*declDomain.Stats, error) {
	var s declDomain.Stats
	for _, c := range []struct {
		dst   *int64
		query string
		arg   any
	}{
		{&s.Total, "", nil},
		{&s.Lost, "type = ?", declDomain.TypeLost},
		{&s.Found, "type = ?", declDomain.TypeFound},
		{&s.Pending, "status = ?", declDomain.StatusPending},
		{&s.Validated, "status = ?", declDomain.StatusValidated},
		{&s.Matched, "status = ?", declDomain.StatusMatched},
		{&s.Returned, "status = ?", declDomain.StatusReturned},
	} {
		if c.query == "" {
			if err := r.count(ctx, c.dst, ""); err != nil {
				return nil, err
			}
			continue
		}
		if err := r.count(ctx, c.dst, c.query, c.arg); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
