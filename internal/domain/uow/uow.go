package uow

import (
	"context"

	"land-registry-backend/internal/domain/mortgage"
	"land-registry-backend/internal/domain/party"
	"land-registry-backend/internal/domain/survey"
)

type Repos struct {
	Parties   party.Repository
	Mortgages mortgage.Repository
	Surveys   survey.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the mortgage row first, then pass it in
	WithinMortgageTx(ctx context.Context, mortgageID uint64, fn func(r Repos, m *mortgage.Mortgage) error) error
	// convenience: lock the survey row first, then pass it in
	WithinSurveyTx(ctx context.Context, surveyID uint64, fn func(r Repos, s *survey.Survey) error) error
}
