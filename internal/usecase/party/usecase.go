package party

import (
	"context"
	"errors"
	"time"

	domain "land-registry-backend/internal/domain/party"
	"land-registry-backend/internal/password"
	"land-registry-backend/internal/token"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	repo   domain.Repository
	hasher password.Hasher
	tokens *token.Service
}

func NewUsecase(repo domain.Repository, hasher password.Hasher, tokens *token.Service) *Usecase {
	return &Usecase{repo: repo, hasher: hasher, tokens: tokens}
}

// Register stores a new party pending government approval. License number,
// chain address and email must all be unused within the role.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (uint64, error) {
	if in.Name == "" || in.LicenseNumber == "" || in.ChainAddress == "" ||
		in.Email == "" || in.Password == "" {
		return 0, ErrInvalidInput
	}
	if in.Role != domain.RoleBank && in.Role != domain.RoleSurveyor {
		return 0, ErrInvalidInput
	}

	_, err := u.repo.FindDuplicate(ctx, in.Role, in.LicenseNumber, in.ChainAddress, in.Email)
	switch {
	case err == nil:
		return 0, domain.ErrDuplicate
	case !errors.Is(err, domain.ErrNotFound):
		return 0, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return 0, err
	}

	p := &domain.Party{
		Role:            in.Role,
		Name:            in.Name,
		Contact:         in.Contact,
		LicenseNumber:   in.LicenseNumber,
		ChainAddress:    in.ChainAddress,
		Email:           in.Email,
		PasswordHash:    hash,
		BranchAddress:   in.BranchAddress,
		Specialization:  in.Specialization,
		ExperienceYears: in.ExperienceYears,
		Approved:        false,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Authenticate checks existence, then approval, then the password, in that
// order. The ordering mirrors the login flow the front end depends on: an
// unapproved party is told so before its password is ever compared.
func (u *Usecase) Authenticate(ctx context.Context, role domain.Role, email, pass string) (*AuthResult, error) {
	p, err := u.repo.GetByEmail(ctx, role, email)
	if err != nil {
		return nil, err
	}
	if !p.Approved {
		return nil, domain.ErrPendingApproval
	}
	if !u.hasher.Verify(pass, p.PasswordHash) {
		return nil, domain.ErrWrongPassword
	}

	tok, err := u.tokens.Issue(p.ID, string(p.Role), p.ChainAddress)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: tok, Party: p}, nil
}

func (u *Usecase) Profile(ctx context.Context, id uint64) (*domain.Party, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *Usecase) ListPending(ctx context.Context, role domain.Role) ([]domain.Party, error) {
	return u.repo.ListPending(ctx, role)
}

// Approve marks the party as approved. Re-approving an already approved
// party just refreshes the approver and timestamp.
func (u *Usecase) Approve(ctx context.Context, role domain.Role, id uint64, approvedBy string) (*domain.Party, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role != role {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	p.Approved = true
	p.ApprovedBy = &approvedBy
	p.ApprovedDate = &now
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Reject removes the party record permanently. Rejection keeps no audit
// trail; the applicant simply ceases to exist.
func (u *Usecase) Reject(ctx context.Context, role domain.Role, id uint64) error {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Role != role {
		return domain.ErrNotFound
	}
	return u.repo.Delete(ctx, id)
}
