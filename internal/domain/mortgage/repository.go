package mortgage

import "context"

type Repository interface {
	Create(ctx context.Context, m *Mortgage) error
	Save(ctx context.Context, m *Mortgage) error
	GetByID(ctx context.Context, id uint64) (*Mortgage, error)
	// GetByIDForUpdate locks the mortgage row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Mortgage, error)
	// FindOpenByPropertyID returns the mortgage encumbering a property, if
	// any. Mortgages in a terminal status are never returned.
	FindOpenByPropertyID(ctx context.Context, propertyID uint64) (*Mortgage, error)
	ListByBank(ctx context.Context, bankAddress string) ([]Mortgage, error)
	ListByOwner(ctx context.Context, propertyOwner string) ([]Mortgage, error)
	AddPayment(ctx context.Context, p *Payment) error
	ListPayments(ctx context.Context, mortgageID uint64) ([]Payment, error)
}
