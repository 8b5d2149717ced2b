package survey

import "context"

type Repository interface {
	Create(ctx context.Context, s *Survey) error
	Save(ctx context.Context, s *Survey) error
	GetByID(ctx context.Context, id uint64) (*Survey, error)
	// GetByIDForUpdate locks the survey row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Survey, error)
	List(ctx context.Context) ([]Survey, error)
	ListByProperty(ctx context.Context, propertyID uint64) ([]Survey, error)
	ListBySurveyor(ctx context.Context, surveyorAddress string) ([]Survey, error)
}
