package mortgage

import (
	"context"
	"errors"
	"time"

	domain "land-registry-backend/internal/domain/mortgage"
	"land-registry-backend/internal/domain/uow"
	"land-registry-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	// newRef generates a payment reference when the caller supplies none.
	newRef func() string
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx, newRef: id.NewID32}
}

// Apply opens a Pending mortgage with the full loan amount outstanding. The
// id comes from the database sequence, not a read-count-then-insert.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	if in.LoanAmount <= 0 || in.PropertyID == 0 || in.PropertyOwner == "" || in.BankAddress == "" {
		return nil, ErrInvalidInput
	}
	if in.TenureMonths <= 0 || in.InterestRateBps < 0 {
		return nil, ErrInvalidInput
	}

	m := &domain.Mortgage{
		PropertyID:       in.PropertyID,
		PropertyOwner:    in.PropertyOwner,
		BankAddress:      in.BankAddress,
		LoanAmount:       in.LoanAmount,
		InterestRateBps:  in.InterestRateBps,
		TenureMonths:     in.TenureMonths,
		RemainingBalance: in.LoanAmount,
		Status:           domain.StatusPending,
		LienActive:       false,
		IPFSHash:         in.IPFSHash,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return &ApplyResult{MortgageID: m.MortgageID, Status: m.Status}, nil
}

// Approve moves Pending to Approved and raises the lien. Only the bank the
// application names may approve it.
func (u *Usecase) Approve(ctx context.Context, mortgageID uint64, bankAddress string) (*domain.Mortgage, error) {
	var out *domain.Mortgage
	err := u.uow.WithinMortgageTx(ctx, mortgageID, func(r uow.Repos, m *domain.Mortgage) error {
		if m.BankAddress != bankAddress {
			return domain.ErrNotFound
		}
		if m.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}
		m.Status = domain.StatusApproved
		m.LienActive = m.RemainingBalance > 0
		if err := r.Mortgages.Save(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Activate moves Approved to Active and stamps the repayment schedule start.
func (u *Usecase) Activate(ctx context.Context, mortgageID uint64, bankAddress string) (*domain.Mortgage, error) {
	var out *domain.Mortgage
	err := u.uow.WithinMortgageTx(ctx, mortgageID, func(r uow.Repos, m *domain.Mortgage) error {
		if m.BankAddress != bankAddress {
			return domain.ErrNotFound
		}
		if m.Status != domain.StatusApproved {
			return domain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		next := now.AddDate(0, 1, 0)
		m.Status = domain.StatusActive
		m.StartDate = &now
		m.NextPaymentDate = &next
		if err := r.Mortgages.Save(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecordPayment appends a ledger entry and reduces the balance, clamped at
// zero: overpayment is absorbed silently rather than rejected. A balance of
// exactly zero pays the mortgage off and releases the lien. Payments are
// accepted at any status, matching the informal pre-activation holding the
// original system allowed.
func (u *Usecase) RecordPayment(ctx context.Context, mortgageID uint64, amount float64, txRef string) (*PaymentResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}
	if txRef == "" {
		txRef = u.newRef()
	}

	var out *PaymentResult
	err := u.uow.WithinMortgageTx(ctx, mortgageID, func(r uow.Repos, m *domain.Mortgage) error {
		now := time.Now().UTC()
		p := &domain.Payment{
			MortgageID:     m.MortgageID,
			Amount:         amount,
			TransactionRef: txRef,
			PaidAt:         now,
		}
		if err := r.Mortgages.AddPayment(ctx, p); err != nil {
			return err
		}

		balance := m.RemainingBalance - amount
		if balance < 0 {
			balance = 0
		}
		m.RemainingBalance = balance
		if balance == 0 {
			m.Status = domain.StatusPaidOff
			m.LienActive = false
		}
		if err := r.Mortgages.Save(ctx, m); err != nil {
			return err
		}

		out = &PaymentResult{
			MortgageID:       m.MortgageID,
			RemainingBalance: m.RemainingBalance,
			Status:           m.Status,
			LienActive:       m.LienActive,
			PaidAt:           now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) History(ctx context.Context, mortgageID uint64) (*History, error) {
	m, err := u.repo.GetByID(ctx, mortgageID)
	if err != nil {
		return nil, err
	}
	payments, err := u.repo.ListPayments(ctx, mortgageID)
	if err != nil {
		return nil, err
	}
	return &History{
		Payments:         payments,
		TotalPaid:        m.TotalPaid(),
		RemainingBalance: m.RemainingBalance,
	}, nil
}

// FindForProperty returns the mortgage currently encumbering a property.
// Paid-off and foreclosed mortgages are invisible here, so an owner can
// re-apply once the debt is settled.
func (u *Usecase) FindForProperty(ctx context.Context, propertyID uint64) (*domain.Mortgage, error) {
	return u.repo.FindOpenByPropertyID(ctx, propertyID)
}

func (u *Usecase) Get(ctx context.Context, mortgageID uint64) (*domain.Mortgage, error) {
	return u.repo.GetByID(ctx, mortgageID)
}

func (u *Usecase) ListForBank(ctx context.Context, bankAddress string) ([]domain.Mortgage, error) {
	return u.repo.ListByBank(ctx, bankAddress)
}

func (u *Usecase) ListForOwner(ctx context.Context, propertyOwner string) ([]domain.Mortgage, error) {
	return u.repo.ListByOwner(ctx, propertyOwner)
}
