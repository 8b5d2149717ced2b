package mysql

import (
	"context"
	"errors"

	partyDomain "land-registry-backend/internal/domain/party"

	"gorm.io/gorm"
)

type PartyRepository struct{ db *gorm.DB }

func NewPartyRepository(db *gorm.DB) *PartyRepository { return &PartyRepository{db: db} }

func (r *PartyRepository) Create(ctx context.Context, p *partyDomain.Party) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PartyRepository) Save(ctx context.Context, p *partyDomain.Party) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PartyRepository) GetByID(ctx context.Context, id uint64) (*partyDomain.Party, error) {
	var out partyDomain.Party
	res := r.db.WithContext(ctx).First(&out, "id = ?", id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, partyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PartyRepository) GetByEmail(ctx context.Context, role partyDomain.Role, email string) (*partyDomain.Party, error) {
	var out partyDomain.Party
	res := r.db.WithContext(ctx).
		Where("role = ? AND email = ?", role, email).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, partyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PartyRepository) GetByChainAddress(ctx context.Context, role partyDomain.Role, addr string) (*partyDomain.Party, error) {
	var out partyDomain.Party
	res := r.db.WithContext(ctx).
		Where("role = ? AND chain_address = ?", role, addr).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, partyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PartyRepository) FindDuplicate(ctx context.Context, role partyDomain.Role, license, chainAddr, email string) (*partyDomain.Party, error) {
	var out partyDomain.Party
	res := r.db.WithContext(ctx).
		Where("role = ?", role).
		Where("license_number = ? OR chain_address = ? OR email = ?", license, chainAddr, email).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, partyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PartyRepository) ListPending(ctx context.Context, role partyDomain.Role) ([]partyDomain.Party, error) {
	var out []partyDomain.Party
	res := r.db.WithContext(ctx).
		Where("role = ? AND approved = ?", role, false).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PartyRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&partyDomain.Party{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return partyDomain.ErrNotFound
	}
	return nil
}
