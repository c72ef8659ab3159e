package declaration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	catDomain "declatogo-backend/internal/domain/category"
	declDomain "declatogo-backend/internal/domain/declaration"
	notifDomain "declatogo-backend/internal/domain/notification"
	"declatogo-backend/internal/domain/uow"
	"declatogo-backend/pkg/id"

	"gorm.io/gorm"
)

// SavedHook is the matching engine's entry point, invoked after every
// persisted declaration write.
type SavedHook interface {
	OnDeclarationSaved(ctx context.Context, d *declDomain.Declaration, created bool) error
}

// ReturnedNotifier is the dispatcher slice used on transitions into
// RETURNED.
type ReturnedNotifier interface {
	NotifyReturned(ctx context.Context, decl, counterpart *declDomain.Declaration, remarks string)
}

type Usecase struct {
	repo       declDomain.Repository
	categories catDomain.Repository
	uow        uow.UnitOfWork
	hook       SavedHook
	notifier   ReturnedNotifier
}

func NewUsecase(repo declDomain.Repository, cats catDomain.Repository, tx uow.UnitOfWork, hook SavedHook, notifier ReturnedNotifier) *Usecase {
	return &Usecase{repo: repo, categories: cats, uow: tx, hook: hook, notifier: notifier}
}

// Create files a new declaration as PENDING, issues its receipt number and
// fires the post-save hook. Matching never runs here in practice — the
// guard rejects PENDING — but the hook contract is "after every write".
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DeclarationDTO, error) {
	if len(in.OwnerID) != 32 {
		return nil, errors.New("invalid owner id")
	}
	typ := declDomain.Type(in.Type)
	if typ != declDomain.TypeLost && typ != declDomain.TypeFound {
		return nil, errors.New("type must be LOST or FOUND")
	}
	if _, err := u.categories.GetByCode(ctx, in.CategoryCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catDomain.ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	seq, err := u.repo.CountByTypeInYear(ctx, typ, now.Year())
	if err != nil {
		return nil, err
	}

	d := &declDomain.Declaration{
		DeclarationID:   id.NewID32(),
		ReceiptNumber:   declDomain.FormatReceiptNumber(typ, now.Year(), seq+1),
		Type:            typ,
		CategoryCode:    in.CategoryCode,
		PieceNumber:     declDomain.NormalizePieceNumber(in.PieceNumber),
		NameOnPiece:     declDomain.DeriveNameOnPiece(in.NameOnPiece, in.LastName, in.FirstName),
		LastName:        in.LastName,
		FirstName:       in.FirstName,
		BirthDate:       in.BirthDate,
		BirthPlace:      in.BirthPlace,
		Profession:      in.Profession,
		Description:     in.Description,
		Location:        in.Location,
		OccurredOn:      in.OccurredOn,
		PhotoURL:        in.PhotoURL,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Status:          declDomain.StatusPending,
		StatusUpdatedAt: now,
		OwnerID:         in.OwnerID,
	}

	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	u.fireSavedHook(ctx, d, true)
	return toDTO(d), nil
}

func (u *Usecase) Get(ctx context.Context, declarationID string) (*DeclarationDTO, error) {
	d, err := u.repo.GetByDeclarationID(ctx, declarationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, declDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(d), nil
}

func (u *Usecase) List(ctx context.Context, f declDomain.ListFilter) ([]DeclarationDTO, error) {
	rows, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func (u *Usecase) ListMine(ctx context.Context, ownerID string) ([]DeclarationDTO, error) {
	return u.List(ctx, declDomain.ListFilter{OwnerID: ownerID})
}

// Search is the manual counterpart lookup (contains-match over validated
// FOUND declarations). Requires at least one criterion.
func (u *Usecase) Search(ctx context.Context, in SearchInput) ([]DeclarationDTO, error) {
	q := declDomain.SearchQuery(in)
	if q.Empty() {
		return nil, errors.New("provide at least one search criterion")
	}
	rows, err := u.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// ChangeStatus is the staff-driven lifecycle edge. One transaction covers
// the row lock, the transition check, the write and the in-app
// notification; the RETURNED email fan-out and the re-run of the matching
// engine happen after commit.
func (u *Usecase) ChangeStatus(ctx context.Context, in ChangeStatusInput) (*DeclarationDTO, error) {
	next := declDomain.Status(in.NewStatus)
	if !declDomain.ValidStatus(next) {
		return nil, declDomain.ErrInvalidTransition
	}

	var (
		updated     *declDomain.Declaration
		counterpart *declDomain.Declaration
		returned    bool
	)
	err := u.uow.WithinDeclarationTx(ctx, in.DeclarationID, func(r uow.Repos, d *declDomain.Declaration) error {
		prev := d.Status
		if next == prev {
			// Not a transition; only refresh the staff notes.
			if in.Remarks != "" {
				d.AdminNotes = in.Remarks
				if err := r.Declarations.Save(ctx, d); err != nil {
					return err
				}
			}
			updated = d
			return nil
		}
		if !declDomain.CanTransition(prev, next) {
			return declDomain.ErrInvalidTransition
		}

		d.Status = next
		d.StatusUpdatedAt = time.Now().UTC()
		if in.Remarks != "" {
			d.AdminNotes = in.Remarks
		}
		if err := r.Declarations.Save(ctx, d); err != nil {
			return err
		}

		returned = next == declDomain.StatusReturned
		if returned && d.MatchedID != nil {
			cp, err := r.Declarations.GetByIDForUpdate(ctx, *d.MatchedID)
			if err != nil {
				return err
			}
			counterpart = cp
		}

		// The RETURNED notification goes through the dispatcher after
		// commit; every other transition gets its in-app record here,
		// atomically with the status write.
		if !returned {
			declID := d.ID
			if err := r.Notifications.Create(ctx, &notifDomain.Notification{
				NotificationID: id.NewID32(),
				OwnerID:        d.OwnerID,
				DeclarationID:  &declID,
				Category:       notifDomain.CategoryStatusChange,
				Title:          fmt.Sprintf("Changement de statut : %s", d.ReceiptNumber),
				Body: fmt.Sprintf("Votre déclaration %s est passée de « %s » à « %s ». %s",
					d.ReceiptNumber, prev, next, in.Remarks),
			}); err != nil {
				return err
			}
		}
		updated = d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, declDomain.ErrNotFound
		}
		return nil, err
	}

	if returned {
		u.notifier.NotifyReturned(ctx, updated, counterpart, in.Remarks)
	}
	u.fireSavedHook(ctx, updated, false)
	return toDTO(updated), nil
}

// Delete soft-deletes a declaration (admin only, enforced upstream) and
// nulls any counterpart's back-reference — the match edge is non-owning,
// so the other side must survive.
func (u *Usecase) Delete(ctx context.Context, declarationID, actorID string) error {
	err := u.uow.WithinDeclarationTx(ctx, declarationID, func(r uow.Repos, d *declDomain.Declaration) error {
		if err := r.Declarations.ClearMatchReference(ctx, d.ID); err != nil {
			return err
		}
		return r.Declarations.SoftDelete(ctx, d, actorID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return declDomain.ErrNotFound
	}
	return err
}

func (u *Usecase) Stats(ctx context.Context) (*declDomain.Stats, error) {
	return u.repo.Stats(ctx)
}

// fireSavedHook runs the matching engine; its failures are logged, never
// surfaced — the citizen's write already succeeded on its own merits.
func (u *Usecase) fireSavedHook(ctx context.Context, d *declDomain.Declaration, created bool) {
	if u.hook == nil {
		return
	}
	if err := u.hook.OnDeclarationSaved(ctx, d, created); err != nil {
		log.Printf("declaration: post-save matching for %s: %v", d.ReceiptNumber, err)
	}
}

func toDTOs(rows []declDomain.Declaration) []DeclarationDTO {
	out := make([]DeclarationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
