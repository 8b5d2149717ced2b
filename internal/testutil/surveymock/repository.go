package surveymock

import (
	"context"

	domain "land-registry-backend/internal/domain/survey"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies survey.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, s *domain.Survey) error
	SaveFn             func(ctx context.Context, s *domain.Survey) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Survey, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Survey, error)
	ListFn             func(ctx context.Context) ([]domain.Survey, error)
	ListByPropertyFn   func(ctx context.Context, propertyID uint64) ([]domain.Survey, error)
	ListBySurveyorFn   func(ctx context.Context, surveyorAddress string) ([]domain.Survey, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Survey) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Survey) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Survey, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Survey, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Survey, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByProperty(ctx context.Context, propertyID uint64) ([]domain.Survey, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *Repo) ListBySurveyor(ctx context.Context, surveyorAddress string) ([]domain.Survey, error) {
	if m.ListBySurveyorFn != nil {
		return m.ListBySurveyorFn(ctx, surveyorAddress)
	}
	return nil, nil
}
