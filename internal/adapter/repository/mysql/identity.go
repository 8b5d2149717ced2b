package mysql

import (
	"context"
	"errors"

	partyDomain "land-registry-backend/internal/domain/party"

	"gorm.io/gorm"
)

type OwnerRepository struct{ db *gorm.DB }

func NewOwnerRepository(db *gorm.DB) *OwnerRepository { return &OwnerRepository{db: db} }

func (r *OwnerRepository) Create(ctx context.Context, o *partyDomain.Owner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OwnerRepository) GetByEmail(ctx context.Context, email string) (*partyDomain.Owner, error) {
	var out partyDomain.Owner
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, partyDomain.ErrNotFound
	}
	return &out, res.Error
}

type RegistrarRepository struct{ db *gorm.DB }

func NewRegistrarRepository(db *gorm.DB) *RegistrarRepository {
	return &RegistrarRepository{db: db}
}

func (r *RegistrarRepository) Create(ctx context.Context, reg *partyDomain.Registrar) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *RegistrarRepository) GetByUsername(ctx context.Context, username string) (*partyDomain.Registrar, error) {
	var out partyDomain.Registrar
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, partyDomain.ErrNotFound
	}
	return &out, res.Error
}
