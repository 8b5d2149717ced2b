package mysql

import (
	"context"
	"errors"

	mortgageDomain "land-registry-backend/internal/domain/mortgage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MortgageRepository struct{ db *gorm.DB }

func NewMortgageRepository(db *gorm.DB) *MortgageRepository { return &MortgageRepository{db: db} }

func (r *MortgageRepository) Create(ctx context.Context, m *mortgageDomain.Mortgage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MortgageRepository) Save(ctx context.Context, m *mortgageDomain.Mortgage) error {
	return r.db.WithContext(ctx).Omit("Payments").Save(m).Error
}

func (r *MortgageRepository) GetByID(ctx context.Context, id uint64) (*mortgageDomain.Mortgage, error) {
	var out mortgageDomain.Mortgage
	res := r.db.WithContext(ctx).First(&out, "mortgage_id = ?", id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, mortgageDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *MortgageRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*mortgageDomain.Mortgage, error) {
	var out mortgageDomain.Mortgage
	tx := r.db.WithContext(ctx)
	// sqlite (tests) has no SELECT ... FOR UPDATE; its single-writer model
	// already serializes the transaction.
	if r.db.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := tx.First(&out, "mortgage_id = ?", id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, mortgageDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *MortgageRepository) FindOpenByPropertyID(ctx context.Context, propertyID uint64) (*mortgageDomain.Mortgage, error) {
	var out mortgageDomain.Mortgage
	res := r.db.WithContext(ctx).
		Where("property_id = ? AND status IN ?", propertyID, mortgageDomain.OpenStatuses).
		Order("created_at DESC, mortgage_id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, mortgageDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *MortgageRepository) ListByBank(ctx context.Context, bankAddress string) ([]mortgageDomain.Mortgage, error) {
	var out []mortgageDomain.Mortgage
	res := r.db.WithContext(ctx).
		Where("bank_address = ?", bankAddress).
		Order("created_at DESC, mortgage_id DESC").
		Find(&out)
	return out, res.Error
}

func (r *MortgageRepository) ListByOwner(ctx context.Context, propertyOwner string) ([]mortgageDomain.Mortgage, error) {
	var out []mortgageDomain.Mortgage
	res := r.db.WithContext(ctx).
		Where("property_owner = ?", propertyOwner).
		Order("created_at DESC, mortgage_id DESC").
		Find(&out)
	return out, res.Error
}

func (r *MortgageRepository) AddPayment(ctx context.Context, p *mortgageDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *MortgageRepository) ListPayments(ctx context.Context, mortgageID uint64) ([]mortgageDomain.Payment, error) {
	var out []mortgageDomain.Payment
	res := r.db.WithContext(ctx).
		Where("mortgage_id = ?", mortgageID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
