package ownermock

import (
	"context"

	domain "declatogo-backend/internal/domain/owner"
)

var _ domain.Directory = (*Directory)(nil)

// Directory is a map-backed owner lookup for tests.
type Directory struct {
	Owners map[string]*domain.Owner
}

func (m *Directory) GetByOwnerID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	if o, ok := m.Owners[ownerID]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}
