package survey

import (
	"context"
	"errors"
	"time"

	partyDomain "land-registry-backend/internal/domain/party"
	domain "land-registry-backend/internal/domain/survey"
	"land-registry-backend/internal/domain/uow"
)

var ErrInvalidInput = errors.New("invalid input")

var validTypes = map[domain.Type]bool{
	domain.TypeBoundary:     true,
	domain.TypeTopographic:  true,
	domain.TypeConstruction: true,
	domain.TypeSubdivision:  true,
	domain.TypeOther:        true,
}

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

func (u *Usecase) Request(ctx context.Context, in RequestInput) (*RequestResult, error) {
	if in.PropertyID == 0 || in.PropertyOwner == "" || in.RequestedBy == "" {
		return nil, ErrInvalidInput
	}
	if !validTypes[in.SurveyType] {
		return nil, ErrInvalidInput
	}

	s := &domain.Survey{
		PropertyID:    in.PropertyID,
		PropertyOwner: in.PropertyOwner,
		RequestedBy:   in.RequestedBy,
		SurveyType:    in.SurveyType,
		Status:        domain.StatusPending,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return &RequestResult{SurveyID: s.SurveyID, Status: s.Status}, nil
}

// Assign hands the survey to an approved surveyor. Re-assigning an already
// assigned survey silently overwrites the previous surveyor; there is no
// status guard here, only the eligibility check on the target.
func (u *Usecase) Assign(ctx context.Context, surveyID uint64, surveyorAddress, assignedBy string) (*domain.Survey, error) {
	if surveyorAddress == "" {
		return nil, ErrInvalidInput
	}

	var out *domain.Survey
	err := u.uow.WithinSurveyTx(ctx, surveyID, func(r uow.Repos, s *domain.Survey) error {
		surveyor, err := r.Parties.GetByChainAddress(ctx, partyDomain.RoleSurveyor, surveyorAddress)
		if errors.Is(err, partyDomain.ErrNotFound) {
			return domain.ErrSurveyorNotEligible
		}
		if err != nil {
			return err
		}
		if !surveyor.Approved {
			return domain.ErrSurveyorNotEligible
		}

		s.SurveyorAddress = surveyorAddress
		s.AssignedBy = assignedBy
		s.Status = domain.StatusAssigned
		if err := r.Surveys.Save(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Submit files the surveyor's report. Allowed only while the survey is
// Assigned or InProgress. The survey date defaults to now when omitted.
func (u *Usecase) Submit(ctx context.Context, surveyID uint64, in SubmitInput) (*domain.Survey, error) {
	var out *domain.Survey
	err := u.uow.WithinSurveyTx(ctx, surveyID, func(r uow.Repos, s *domain.Survey) error {
		if !s.Submittable() {
			return domain.ErrInvalidTransition
		}

		now := time.Now().UTC()
		surveyDate := now
		if in.SurveyDate != nil {
			surveyDate = in.SurveyDate.UTC()
		}
		s.IPFSHash = in.IPFSHash
		s.GPSCoordinates = in.GPSCoordinates
		s.SurveyDate = &surveyDate
		s.SubmissionDate = &now
		s.Status = domain.StatusSubmitted
		if err := r.Surveys.Save(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Verify settles a Submitted survey as Approved or Rejected and always
// stamps the verification date.
func (u *Usecase) Verify(ctx context.Context, surveyID uint64, approved bool, remarks, verifiedBy string) (*domain.Survey, error) {
	var out *domain.Survey
	err := u.uow.WithinSurveyTx(ctx, surveyID, func(r uow.Repos, s *domain.Survey) error {
		if s.Status != domain.StatusSubmitted {
			return domain.ErrInvalidTransition
		}

		now := time.Now().UTC()
		s.VerifiedBy = verifiedBy
		s.Remarks = remarks
		s.VerifiedDate = &now
		if approved {
			s.Status = domain.StatusApproved
		} else {
			s.Status = domain.StatusRejected
		}
		if err := r.Surveys.Save(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, surveyID uint64) (*domain.Survey, error) {
	return u.repo.GetByID(ctx, surveyID)
}

func (u *Usecase) List(ctx context.Context) ([]domain.Survey, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) ListForProperty(ctx context.Context, propertyID uint64) ([]domain.Survey, error) {
	return u.repo.ListByProperty(ctx, propertyID)
}

func (u *Usecase) ListForSurveyor(ctx context.Context, surveyorAddress string) ([]domain.Survey, error) {
	return u.repo.ListBySurveyor(ctx, surveyorAddress)
}
