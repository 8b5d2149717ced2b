package party

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "land-registry-backend/internal/domain/party"
	"land-registry-backend/internal/password"
	"land-registry-backend/internal/testutil/partymock"
	"land-registry-backend/internal/token"
)

var (
	testHasher = password.NewHasher(4)
	testTokens = token.NewService("test-signing-key", "registry-test", time.Hour)
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Role:          domain.RoleBank,
		Name:          "First National",
		Contact:       "021-555",
		LicenseNumber: "L1",
		ChainAddress:  "0xbank1",
		Email:         "bank@example.com",
		Password:      "secret",
		BranchAddress: "1 Main St",
	}
}

func TestRegister(t *testing.T) {
	t.Run("stores an unapproved party with a hashed password", func(t *testing.T) {
		var created *domain.Party
		repo := &partymock.Repo{
			CreateFn: func(ctx context.Context, p *domain.Party) error {
				p.ID = 5
				created = p
				return nil
			},
		}
		u := NewUsecase(repo, testHasher, testTokens)

		id, err := u.Register(context.Background(), validRegisterInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 5 {
			t.Errorf("id = %d, want 5", id)
		}
		if created.Approved {
			t.Error("new registrations must start unapproved")
		}
		if created.PasswordHash == "secret" || created.PasswordHash == "" {
			t.Error("password must be stored hashed")
		}
		if !testHasher.Verify("secret", created.PasswordHash) {
			t.Error("stored hash does not verify against the plain password")
		}
	})

	t.Run("duplicate license number is refused", func(t *testing.T) {
		repo := &partymock.Repo{
			FindDuplicateFn: func(ctx context.Context, role domain.Role, license, chainAddr, email string) (*domain.Party, error) {
				if license == "L1" {
					return &domain.Party{ID: 1, LicenseNumber: "L1"}, nil
				}
				return nil, domain.ErrNotFound
			},
		}
		u := NewUsecase(repo, testHasher, testTokens)

		in := validRegisterInput()
		in.ChainAddress = "0xbank2"
		in.Email = "other@example.com"
		if _, err := u.Register(context.Background(), in); !errors.Is(err, domain.ErrDuplicate) {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})

	t.Run("missing fields are refused", func(t *testing.T) {
		u := NewUsecase(&partymock.Repo{}, testHasher, testTokens)
		mutations := []func(*RegisterInput){
			func(in *RegisterInput) { in.Name = "" },
			func(in *RegisterInput) { in.LicenseNumber = "" },
			func(in *RegisterInput) { in.ChainAddress = "" },
			func(in *RegisterInput) { in.Email = "" },
			func(in *RegisterInput) { in.Password = "" },
			func(in *RegisterInput) { in.Role = "owner" },
		}
		for i, mutate := range mutations {
			in := validRegisterInput()
			mutate(&in)
			if _, err := u.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("case %d: err = %v, want ErrInvalidInput", i, err)
			}
		}
	})
}

func TestAuthenticate(t *testing.T) {
	hash, err := testHasher.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	stored := func(approved bool) *partymock.Repo {
		return &partymock.Repo{
			GetByEmailFn: func(ctx context.Context, role domain.Role, email string) (*domain.Party, error) {
				if email != "bank@example.com" {
					return nil, domain.ErrNotFound
				}
				return &domain.Party{
					ID:           3,
					Role:         role,
					Email:        email,
					ChainAddress: "0xbank1",
					PasswordHash: hash,
					Approved:     approved,
				}, nil
			},
		}
	}

	t.Run("approved party with right password gets a token", func(t *testing.T) {
		u := NewUsecase(stored(true), testHasher, testTokens)
		res, err := u.Authenticate(context.Background(), domain.RoleBank, "bank@example.com", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := testTokens.Verify(res.Token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if claims.Role != "bank" {
			t.Errorf("token role = %q, want bank", claims.Role)
		}
		if claims.ChainAddress != "0xbank1" {
			t.Errorf("token chain address = %q, want 0xbank1", claims.ChainAddress)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		u := NewUsecase(stored(true), testHasher, testTokens)
		if _, err := u.Authenticate(context.Background(), domain.RoleBank, "nobody@example.com", "secret"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("unapproved party is told so even with a wrong password", func(t *testing.T) {
		u := NewUsecase(stored(false), testHasher, testTokens)
		if _, err := u.Authenticate(context.Background(), domain.RoleBank, "bank@example.com", "wrong"); !errors.Is(err, domain.ErrPendingApproval) {
			t.Errorf("err = %v, want ErrPendingApproval", err)
		}
	})

	t.Run("wrong password on an approved party", func(t *testing.T) {
		u := NewUsecase(stored(true), testHasher, testTokens)
		if _, err := u.Authenticate(context.Background(), domain.RoleBank, "bank@example.com", "wrong"); !errors.Is(err, domain.ErrWrongPassword) {
			t.Errorf("err = %v, want ErrWrongPassword", err)
		}
	})
}

func TestApprove(t *testing.T) {
	stored := func(role domain.Role, approved bool) *partymock.Repo {
		return &partymock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domain.Party, error) {
				return &domain.Party{ID: id, Role: role, Approved: approved}, nil
			},
		}
	}

	t.Run("marks the party approved with approver and date", func(t *testing.T) {
		u := NewUsecase(stored(domain.RoleBank, false), testHasher, testTokens)
		p, err := u.Approve(context.Background(), domain.RoleBank, 1, "registrar-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Approved {
			t.Error("party should be approved")
		}
		if p.ApprovedBy == nil || *p.ApprovedBy != "registrar-1" {
			t.Error("approver should be recorded")
		}
		if p.ApprovedDate == nil {
			t.Error("approval date should be recorded")
		}
	})

	t.Run("re-approving is a refresh, not an error", func(t *testing.T) {
		u := NewUsecase(stored(domain.RoleBank, true), testHasher, testTokens)
		if _, err := u.Approve(context.Background(), domain.RoleBank, 1, "registrar-2"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("role mismatch reads as not found", func(t *testing.T) {
		u := NewUsecase(stored(domain.RoleSurveyor, false), testHasher, testTokens)
		if _, err := u.Approve(context.Background(), domain.RoleBank, 1, "registrar-1"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestReject(t *testing.T) {
	t.Run("deletes the record", func(t *testing.T) {
		var deleted uint64
		repo := &partymock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domain.Party, error) {
				return &domain.Party{ID: id, Role: domain.RoleSurveyor}, nil
			},
			DeleteFn: func(ctx context.Context, id uint64) error {
				deleted = id
				return nil
			},
		}
		u := NewUsecase(repo, testHasher, testTokens)
		if err := u.Reject(context.Background(), domain.RoleSurveyor, 9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 9 {
			t.Errorf("deleted id = %d, want 9", deleted)
		}
	})

	t.Run("unknown party", func(t *testing.T) {
		u := NewUsecase(&partymock.Repo{}, testHasher, testTokens)
		if err := u.Reject(context.Background(), domain.RoleBank, 9); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
