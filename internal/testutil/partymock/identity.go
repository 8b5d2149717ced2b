package partymock

import (
	"context"

	domain "land-registry-backend/internal/domain/party"
)

var (
	_ domain.OwnerRepository     = (*OwnerRepo)(nil)
	_ domain.RegistrarRepository = (*RegistrarRepo)(nil)
)

// OwnerRepo is a function-backed mock for party.OwnerRepository.
type OwnerRepo struct {
	CreateFn     func(ctx context.Context, o *domain.Owner) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.Owner, error)
}

func (m *OwnerRepo) Create(ctx context.Context, o *domain.Owner) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *OwnerRepo) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

// RegistrarRepo is a function-backed mock for party.RegistrarRepository.
type RegistrarRepo struct {
	CreateFn        func(ctx context.Context, r *domain.Registrar) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Registrar, error)
}

func (m *RegistrarRepo) Create(ctx context.Context, r *domain.Registrar) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RegistrarRepo) GetByUsername(ctx context.Context, username string) (*domain.Registrar, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, domain.ErrNotFound
}
