package mortgagemock

import (
	"context"

	domain "land-registry-backend/internal/domain/mortgage"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies mortgage.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, m *domain.Mortgage) error
	SaveFn                 func(ctx context.Context, m *domain.Mortgage) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Mortgage, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Mortgage, error)
	FindOpenByPropertyIDFn func(ctx context.Context, propertyID uint64) (*domain.Mortgage, error)
	ListByBankFn           func(ctx context.Context, bankAddress string) ([]domain.Mortgage, error)
	ListByOwnerFn          func(ctx context.Context, propertyOwner string) ([]domain.Mortgage, error)
	AddPaymentFn           func(ctx context.Context, p *domain.Payment) error
	ListPaymentsFn         func(ctx context.Context, mortgageID uint64) ([]domain.Payment, error)
}

func (m *Repo) Create(ctx context.Context, mo *domain.Mortgage) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mo)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, mo *domain.Mortgage) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mo)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Mortgage, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Mortgage, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) FindOpenByPropertyID(ctx context.Context, propertyID uint64) (*domain.Mortgage, error) {
	if m.FindOpenByPropertyIDFn != nil {
		return m.FindOpenByPropertyIDFn(ctx, propertyID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByBank(ctx context.Context, bankAddress string) ([]domain.Mortgage, error) {
	if m.ListByBankFn != nil {
		return m.ListByBankFn(ctx, bankAddress)
	}
	return nil, nil
}

func (m *Repo) ListByOwner(ctx context.Context, propertyOwner string) ([]domain.Mortgage, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, propertyOwner)
	}
	return nil, nil
}

func (m *Repo) AddPayment(ctx context.Context, p *domain.Payment) error {
	if m.AddPaymentFn != nil {
		return m.AddPaymentFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListPayments(ctx context.Context, mortgageID uint64) ([]domain.Payment, error) {
	if m.ListPaymentsFn != nil {
		return m.ListPaymentsFn(ctx, mortgageID)
	}
	return nil, nil
}
