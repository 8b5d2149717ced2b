package registrar

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "land-registry-backend/internal/domain/party"
	"land-registry-backend/internal/password"
	"land-registry-backend/internal/testutil/partymock"
	"land-registry-backend/internal/token"
	partyUC "land-registry-backend/internal/usecase/party"
)

var (
	testHasher = password.NewHasher(4)
	testTokens = token.NewService("test-signing-key", "registry-test", time.Hour)
)

type mailerSpy struct {
	to, subject, body string
	err               error
}

func (m *mailerSpy) Send(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return m.err
}

func newTestUsecase(parties *partymock.Repo, owners *partymock.OwnerRepo, registrars *partymock.RegistrarRepo, mail Mailer) *Usecase {
	if parties == nil {
		parties = &partymock.Repo{}
	}
	if owners == nil {
		owners = &partymock.OwnerRepo{}
	}
	if registrars == nil {
		registrars = &partymock.RegistrarRepo{}
	}
	if mail == nil {
		mail = &mailerSpy{}
	}
	pu := partyUC.NewUsecase(parties, testHasher, testTokens)
	return NewUsecase(pu, owners, registrars, testHasher, testTokens, mail)
}

func TestSeed(t *testing.T) {
	t.Run("creates the account once", func(t *testing.T) {
		var created *domain.Registrar
		registrars := &partymock.RegistrarRepo{
			CreateFn: func(ctx context.Context, r *domain.Registrar) error {
				created = r
				return nil
			},
		}
		u := newTestUsecase(nil, nil, registrars, nil)

		err := u.Seed(context.Background(), SeedInput{Username: "gov", Password: "secret", City: "Jakarta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("registrar should be created")
		}
		if !testHasher.Verify("secret", created.PasswordHash) {
			t.Error("seed password should be stored hashed")
		}
	})

	t.Run("seeding twice is a no-op", func(t *testing.T) {
		createCalls := 0
		registrars := &partymock.RegistrarRepo{
			GetByUsernameFn: func(ctx context.Context, username string) (*domain.Registrar, error) {
				return &domain.Registrar{ID: 1, Username: username}, nil
			},
			CreateFn: func(ctx context.Context, r *domain.Registrar) error {
				createCalls++
				return nil
			},
		}
		u := newTestUsecase(nil, nil, registrars, nil)

		if err := u.Seed(context.Background(), SeedInput{Username: "gov", Password: "secret"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if createCalls != 0 {
			t.Errorf("create called %d times, want 0", createCalls)
		}
	})
}

func TestAuthenticateRegistrar(t *testing.T) {
	hash, err := testHasher.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	registrars := &partymock.RegistrarRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*domain.Registrar, error) {
			if username != "gov" {
				return nil, domain.ErrNotFound
			}
			return &domain.Registrar{ID: 1, Username: "gov", PasswordHash: hash}, nil
		},
	}

	t.Run("right password gets a registrar token", func(t *testing.T) {
		u := newTestUsecase(nil, nil, registrars, nil)
		tok, err := u.Authenticate(context.Background(), "gov", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := testTokens.Verify(tok)
		if err != nil {
			t.Fatalf("token does not verify: %v", err)
		}
		if claims.Role != "registrar" {
			t.Errorf("token role = %q, want registrar", claims.Role)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		u := newTestUsecase(nil, nil, registrars, nil)
		if _, err := u.Authenticate(context.Background(), "gov", "wrong"); !errors.Is(err, domain.ErrWrongPassword) {
			t.Errorf("err = %v, want ErrWrongPassword", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		u := newTestUsecase(nil, nil, registrars, nil)
		if _, err := u.Authenticate(context.Background(), "nobody", "secret"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestSignupOwner(t *testing.T) {
	t.Run("records the owner", func(t *testing.T) {
		owners := &partymock.OwnerRepo{
			CreateFn: func(ctx context.Context, o *domain.Owner) error {
				o.ID = 3
				return nil
			},
		}
		u := newTestUsecase(nil, owners, nil, nil)

		id, err := u.SignupOwner(context.Background(), SignupOwnerInput{Email: "owner@example.com", Name: "A Owner"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 3 {
			t.Errorf("id = %d, want 3", id)
		}
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		owners := &partymock.OwnerRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*domain.Owner, error) {
				return &domain.Owner{ID: 1, Email: email}, nil
			},
		}
		u := newTestUsecase(nil, owners, nil, nil)
		if _, err := u.SignupOwner(context.Background(), SignupOwnerInput{Email: "owner@example.com", Name: "A Owner"}); !errors.Is(err, domain.ErrDuplicate) {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		u := newTestUsecase(nil, nil, nil, nil)
		if _, err := u.SignupOwner(context.Background(), SignupOwnerInput{Email: "", Name: "x"}); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})
}

func TestNotify(t *testing.T) {
	t.Run("sends through the mailer", func(t *testing.T) {
		spy := &mailerSpy{}
		u := newTestUsecase(nil, nil, nil, spy)
		if err := u.Notify("bank@example.com", "Approved", "Your registration was approved."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spy.to != "bank@example.com" || spy.subject != "Approved" {
			t.Errorf("mailer got to=%q subject=%q", spy.to, spy.subject)
		}
	})

	t.Run("missing recipient or message", func(t *testing.T) {
		u := newTestUsecase(nil, nil, nil, nil)
		if err := u.Notify("", "s", "m"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
		if err := u.Notify("a@b.c", "s", ""); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})
}

func TestApprovalGateway(t *testing.T) {
	parties := &partymock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Party, error) {
			role := domain.RoleBank
			if id >= 100 {
				role = domain.RoleSurveyor
			}
			return &domain.Party{ID: id, Role: role}, nil
		},
	}
	u := newTestUsecase(parties, nil, nil, nil)

	t.Run("approve bank", func(t *testing.T) {
		p, err := u.ApproveBank(context.Background(), 1, "gov")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Approved {
			t.Error("bank should be approved")
		}
	})

	t.Run("approve surveyor rejects a bank id", func(t *testing.T) {
		if _, err := u.ApproveSurveyor(context.Background(), 1, "gov"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("reject surveyor deletes", func(t *testing.T) {
		if err := u.RejectSurveyor(context.Background(), 100); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
