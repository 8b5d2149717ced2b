package party

import "context"

type Repository interface {
	Create(ctx context.Context, p *Party) error
	Save(ctx context.Context, p *Party) error
	GetByID(ctx context.Context, id uint64) (*Party, error)
	GetByEmail(ctx context.Context, role Role, email string) (*Party, error)
	GetByChainAddress(ctx context.Context, role Role, addr string) (*Party, error)
	// FindDuplicate returns any party of the same role that already holds one
	// of the three identity keys.
	FindDuplicate(ctx context.Context, role Role, license, chainAddr, email string) (*Party, error)
	ListPending(ctx context.Context, role Role) ([]Party, error)
	Delete(ctx context.Context, id uint64) error
}

type OwnerRepository interface {
	Create(ctx context.Context, o *Owner) error
	GetByEmail(ctx context.Context, email string) (*Owner, error)
}

type RegistrarRepository interface {
	Create(ctx context.Context, r *Registrar) error
	GetByUsername(ctx context.Context, username string) (*Registrar, error)
}
