package mysql

import (
	"context"
	"errors"

	surveyDomain "land-registry-backend/internal/domain/survey"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SurveyRepository struct{ db *gorm.DB }

func NewSurveyRepository(db *gorm.DB) *SurveyRepository { return &SurveyRepository{db: db} }

func (r *SurveyRepository) Create(ctx context.Context, s *surveyDomain.Survey) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SurveyRepository) Save(ctx context.Context, s *surveyDomain.Survey) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SurveyRepository) GetByID(ctx context.Context, id uint64) (*surveyDomain.Survey, error) {
	var out surveyDomain.Survey
	res := r.db.WithContext(ctx).First(&out, "survey_id = ?", id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, surveyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *SurveyRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*surveyDomain.Survey, error) {
	var out surveyDomain.Survey
	tx := r.db.WithContext(ctx)
	if r.db.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := tx.First(&out, "survey_id = ?", id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, surveyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *SurveyRepository) List(ctx context.Context) ([]surveyDomain.Survey, error) {
	var out []surveyDomain.Survey
	res := r.db.WithContext(ctx).
		Order("created_at DESC, survey_id DESC").
		Find(&out)
	return out, res.Error
}

func (r *SurveyRepository) ListByProperty(ctx context.Context, propertyID uint64) ([]surveyDomain.Survey, error) {
	var out []surveyDomain.Survey
	res := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC, survey_id DESC").
		Find(&out)
	return out, res.Error
}

func (r *SurveyRepository) ListBySurveyor(ctx context.Context, surveyorAddress string) ([]surveyDomain.Survey, error) {
	var out []surveyDomain.Survey
	res := r.db.WithContext(ctx).
		Where("surveyor_address = ?", surveyorAddress).
		Order("created_at DESC, survey_id DESC").
		Find(&out)
	return out, res.Error
}
