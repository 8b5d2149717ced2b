package registrar

import (
	"context"
	"errors"

	domain "land-registry-backend/internal/domain/party"
	"land-registry-backend/internal/password"
	"land-registry-backend/internal/token"
	partyUC "land-registry-backend/internal/usecase/party"
)

var ErrInvalidInput = errors.New("invalid input")

// Mailer sends approval/rejection notices. Delivery failures are the
// caller's concern; the registry never retries.
type Mailer interface {
	Send(to, subject, body string) error
}

// Usecase is the government side of the registry: a thin gateway over the
// identity store plus the registrar's own account.
type Usecase struct {
	parties    *partyUC.Usecase
	owners     domain.OwnerRepository
	registrars domain.RegistrarRepository
	hasher     password.Hasher
	tokens     *token.Service
	mailer     Mailer
}

func NewUsecase(
	parties *partyUC.Usecase,
	owners domain.OwnerRepository,
	registrars domain.RegistrarRepository,
	hasher password.Hasher,
	tokens *token.Service,
	mailer Mailer,
) *Usecase {
	return &Usecase{
		parties:    parties,
		owners:     owners,
		registrars: registrars,
		hasher:     hasher,
		tokens:     tokens,
		mailer:     mailer,
	}
}

type SeedInput struct {
	Username string
	Password string
	Address  string
	Contact  string
	City     string
}

// Seed creates the government registrar account if it does not exist yet.
// Calling it again is a no-op.
func (u *Usecase) Seed(ctx context.Context, in SeedInput) error {
	if in.Username == "" || in.Password == "" {
		return ErrInvalidInput
	}
	if _, err := u.registrars.GetByUsername(ctx, in.Username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	return u.registrars.Create(ctx, &domain.Registrar{
		Username:     in.Username,
		PasswordHash: hash,
		Address:      in.Address,
		Contact:      in.Contact,
		City:         in.City,
	})
}

// Authenticate logs the registrar in. Registrars have no approval gate, so
// the check order is just existence then password.
func (u *Usecase) Authenticate(ctx context.Context, username, pass string) (string, error) {
	reg, err := u.registrars.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if !u.hasher.Verify(pass, reg.PasswordHash) {
		return "", domain.ErrWrongPassword
	}
	return u.tokens.Issue(reg.ID, "registrar", "")
}

type SignupOwnerInput struct {
	Email      string
	Name       string
	Contact    string
	Address    string
	City       string
	PostalCode string
}

// SignupOwner records a property owner's contact details. Owners do not log
// in; ownership itself is tracked on chain.
func (u *Usecase) SignupOwner(ctx context.Context, in SignupOwnerInput) (uint64, error) {
	if in.Email == "" || in.Name == "" {
		return 0, ErrInvalidInput
	}
	if _, err := u.owners.GetByEmail(ctx, in.Email); err == nil {
		return 0, domain.ErrDuplicate
	} else if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	o := &domain.Owner{
		Email:      in.Email,
		Name:       in.Name,
		Contact:    in.Contact,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
	}
	if err := u.owners.Create(ctx, o); err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (u *Usecase) PendingBanks(ctx context.Context) ([]domain.Party, error) {
	return u.parties.ListPending(ctx, domain.RoleBank)
}

func (u *Usecase) PendingSurveyors(ctx context.Context) ([]domain.Party, error) {
	return u.parties.ListPending(ctx, domain.RoleSurveyor)
}

func (u *Usecase) ApproveBank(ctx context.Context, id uint64, approvedBy string) (*domain.Party, error) {
	return u.parties.Approve(ctx, domain.RoleBank, id, approvedBy)
}

func (u *Usecase) RejectBank(ctx context.Context, id uint64) error {
	return u.parties.Reject(ctx, domain.RoleBank, id)
}

func (u *Usecase) ApproveSurveyor(ctx context.Context, id uint64, approvedBy string) (*domain.Party, error) {
	return u.parties.Approve(ctx, domain.RoleSurveyor, id, approvedBy)
}

func (u *Usecase) RejectSurveyor(ctx context.Context, id uint64) error {
	return u.parties.Reject(ctx, domain.RoleSurveyor, id)
}

// Notify mails a registrant about an approval decision.
func (u *Usecase) Notify(email, subject, message string) error {
	if email == "" || message == "" {
		return ErrInvalidInput
	}
	return u.mailer.Send(email, subject, message)
}
