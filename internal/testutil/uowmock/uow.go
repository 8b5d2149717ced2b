package uowmock

import (
	"context"

	"land-registry-backend/internal/domain/mortgage"
	"land-registry-backend/internal/domain/survey"
	"land-registry-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

// UoW is a function-backed mock that satisfies uow.UnitOfWork. When a
// function field is nil the call runs the callback directly against Repos,
// which keeps simple usecase tests from having to wire every field.
type UoW struct {
	Repos uow.Repos

	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinMortgageTxFn func(ctx context.Context, mortgageID uint64, fn func(r uow.Repos, m *mortgage.Mortgage) error) error
	WithinSurveyTxFn   func(ctx context.Context, surveyID uint64, fn func(r uow.Repos, s *survey.Survey) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinMortgageTx(ctx context.Context, mortgageID uint64, fn func(r uow.Repos, mo *mortgage.Mortgage) error) error {
	if m.WithinMortgageTxFn != nil {
		return m.WithinMortgageTxFn(ctx, mortgageID, fn)
	}
	mo, err := m.Repos.Mortgages.GetByIDForUpdate(ctx, mortgageID)
	if err != nil {
		return err
	}
	return fn(m.Repos, mo)
}

func (m *UoW) WithinSurveyTx(ctx context.Context, surveyID uint64, fn func(r uow.Repos, s *survey.Survey) error) error {
	if m.WithinSurveyTxFn != nil {
		return m.WithinSurveyTxFn(ctx, surveyID, fn)
	}
	s, err := m.Repos.Surveys.GetByIDForUpdate(ctx, surveyID)
	if err != nil {
		return err
	}
	return fn(m.Repos, s)
}
