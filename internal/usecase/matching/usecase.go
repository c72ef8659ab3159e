package matching

import (
	"context"
	"errors"
	"log"
	"strings"

	declDomain "declatogo-backend/internal/domain/declaration"
	"declatogo-backend/internal/domain/uow"
)

// Notifier is the slice of the dispatcher the engine needs: one call per
// affected declarant after a committed link.
type Notifier interface {
	NotifyMatch(ctx context.Context, own, matched *declDomain.Declaration) error
}

// Usecase is the automatic correspondence engine. It runs after every
// persisted declaration write, decides whether the declaration matches an
// opposite-type counterpart, and commits the link atomically.
type Usecase struct {
	decls    declDomain.Repository
	uow      uow.UnitOfWork
	notifier Notifier
}

func NewUsecase(decls declDomain.Repository, tx uow.UnitOfWork, n Notifier) *Usecase {
	return &Usecase{decls: decls, uow: tx, notifier: n}
}

// OnDeclarationSaved is the single entry point invoked after every
// declaration write. A returned error means the link transaction itself
// failed; callers log it and never surface it to the citizen whose write
// triggered the hook.
func (u *Usecase) OnDeclarationSaved(ctx context.Context, d *declDomain.Declaration, created bool) error {
	// Guard: only validated, unlinked declarations with a usable piece
	// number enter the engine. This is also what stops re-entrancy —
	// a freshly linked declaration has matched_id set and short-circuits
	// here on any later save.
	if !d.Matchable() {
		return nil
	}

	candidate, err := u.decls.FindMatchCandidate(ctx, d.Type.Opposite(), d.PieceNumber, d.ID)
	if err != nil {
		return err
	}
	if candidate == nil {
		// No correspondence on file — a normal negative result.
		return nil
	}

	if err := u.link(ctx, d, candidate); err != nil {
		if errors.Is(err, declDomain.ErrAlreadyMatched) || errors.Is(err, declDomain.ErrNotMatchable) {
			// Lost the race: another transaction consumed one of the two
			// rows between candidate selection and lock acquisition. The
			// triggering write stays valid and simply remains unmatched.
			log.Printf("matching: %s lost link race against %s, skipping",
				d.ReceiptNumber, candidate.ReceiptNumber)
			return nil
		}
		return err
	}

	// Symmetric fan-out, each party isolated from the other's failure.
	if err := u.notifier.NotifyMatch(ctx, d, candidate); err != nil {
		log.Printf("matching: notify %s: %v", d.ReceiptNumber, err)
	}
	if err := u.notifier.NotifyMatch(ctx, candidate, d); err != nil {
		log.Printf("matching: notify %s: %v", candidate.ReceiptNumber, err)
	}
	return nil
}

// link commits the pair-update as one transaction: lock both rows in
// ascending id order, re-check the guards under lock, then write both
// sides with targeted field updates. All-or-nothing — a half-linked pair
// can never persist.
func (u *Usecase) link(ctx context.Context, a, b *declDomain.Declaration) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		first, second := a.ID, b.ID
		if first > second {
			first, second = second, first
		}
		la, err := r.Declarations.GetByIDForUpdate(ctx, first)
		if err != nil {
			return err
		}
		lb, err := r.Declarations.GetByIDForUpdate(ctx, second)
		if err != nil {
			return err
		}

		// TOCTOU re-check at lock-acquisition time, not only at query
		// time: both must still be linkable and still describe the same
		// document.
		if err := checkLinkable(la, lb); err != nil {
			return err
		}

		if err := r.Declarations.UpdateMatchFields(ctx, la.ID, lb.ID, declDomain.StatusMatched); err != nil {
			return err
		}
		return r.Declarations.UpdateMatchFields(ctx, lb.ID, la.ID, declDomain.StatusMatched)
	})
	if err != nil {
		return err
	}

	// Reflect the committed state on the in-memory copies for fan-out.
	a.Status = declDomain.StatusMatched
	b.Status = declDomain.StatusMatched
	aID, bID := a.ID, b.ID
	a.MatchedID = &bID
	b.MatchedID = &aID
	return nil
}

func checkLinkable(a, b *declDomain.Declaration) error {
	if a.MatchedID != nil || b.MatchedID != nil {
		return declDomain.ErrAlreadyMatched
	}
	if !a.Matchable() || !b.Matchable() {
		return declDomain.ErrNotMatchable
	}
	if a.Type == b.Type {
		return declDomain.ErrNotMatchable
	}
	if !strings.EqualFold(a.PieceNumber, b.PieceNumber) {
		return declDomain.ErrNotMatchable
	}
	return nil
}
