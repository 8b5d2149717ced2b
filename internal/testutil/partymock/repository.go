package partymock

import (
	"context"

	domain "land-registry-backend/internal/domain/party"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies party.Repository.
// Fill in the function fields you need in a test.
type Repo struct {
	CreateFn            func(ctx context.Context, p *domain.Party) error
	SaveFn              func(ctx context.Context, p *domain.Party) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Party, error)
	GetByEmailFn        func(ctx context.Context, role domain.Role, email string) (*domain.Party, error)
	GetByChainAddressFn func(ctx context.Context, role domain.Role, addr string) (*domain.Party, error)
	FindDuplicateFn     func(ctx context.Context, role domain.Role, license, chainAddr, email string) (*domain.Party, error)
	ListPendingFn       func(ctx context.Context, role domain.Role) ([]domain.Party, error)
	DeleteFn            func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Party) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Party) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Party, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, role domain.Role, email string) (*domain.Party, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, role, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByChainAddress(ctx context.Context, role domain.Role, addr string) (*domain.Party, error) {
	if m.GetByChainAddressFn != nil {
		return m.GetByChainAddressFn(ctx, role, addr)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) FindDuplicate(ctx context.Context, role domain.Role, license, chainAddr, email string) (*domain.Party, error) {
	if m.FindDuplicateFn != nil {
		return m.FindDuplicateFn(ctx, role, license, chainAddr, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListPending(ctx context.Context, role domain.Role) ([]domain.Party, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx, role)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
