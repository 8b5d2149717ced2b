package mysql

import (
	"context"

	"land-registry-backend/internal/domain/mortgage"
	"land-registry-backend/internal/domain/survey"
	"land-registry-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Parties:   &PartyRepository{db: tx},
		Mortgages: &MortgageRepository{db: tx},
		Surveys:   &SurveyRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

func (u *GormUoW) WithinMortgageTx(ctx context.Context, mortgageID uint64, fn func(r uow.Repos, m *mortgage.Mortgage) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		// lock the mortgage row up-front so concurrent payments apply sequentially
		m, err := r.Mortgages.GetByIDForUpdate(ctx, mortgageID)
		if err != nil {
			return err
		}
		return fn(r, m)
	})
}

func (u *GormUoW) WithinSurveyTx(ctx context.Context, surveyID uint64, fn func(r uow.Repos, s *survey.Survey) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		s, err := r.Surveys.GetByIDForUpdate(ctx, surveyID)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
