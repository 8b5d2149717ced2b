package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

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

func newBankHandler(repo *partymock.Repo) *BankHandler {
	parties := partyUC.NewUsecase(repo, testHasher, testTokens)
	return NewBankHandler(parties, nil)
}

func TestBankRegisterHandler(t *testing.T) {
	t.Run("valid registration returns 201", func(t *testing.T) {
		repo := &partymock.Repo{
			CreateFn: func(ctx context.Context, p *domain.Party) error {
				p.ID = 7
				return nil
			},
		}
		h := newBankHandler(repo)

		body := `{"name":"First National","license_number":"L1","chain_address":"0xbank1","email":"bank@example.com","password":"longenough"}`
		req := httptest.NewRequest(http.MethodPost, "/api/bank/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.Register(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
		}
	})

	t.Run("duplicate registration returns 409", func(t *testing.T) {
		repo := &partymock.Repo{
			FindDuplicateFn: func(ctx context.Context, role domain.Role, license, chainAddr, email string) (*domain.Party, error) {
				return &domain.Party{ID: 1}, nil
			},
		}
		h := newBankHandler(repo)

		body := `{"name":"First National","license_number":"L1","chain_address":"0xbank1","email":"bank@example.com","password":"longenough"}`
		req := httptest.NewRequest(http.MethodPost, "/api/bank/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.Register(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})

	t.Run("short password returns 422", func(t *testing.T) {
		h := newBankHandler(&partymock.Repo{})

		body := `{"name":"First National","license_number":"L1","chain_address":"0xbank1","email":"bank@example.com","password":"short"}`
		req := httptest.NewRequest(http.MethodPost, "/api/bank/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.Register(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})
}

func TestBankLoginHandler(t *testing.T) {
	hash, err := testHasher.Hash("secret-pass")
	if err != nil {
		t.Fatal(err)
	}
	stored := func(approved bool) *partymock.Repo {
		return &partymock.Repo{
			GetByEmailFn: func(ctx context.Context, role domain.Role, email string) (*domain.Party, error) {
				return &domain.Party{
					ID:           1,
					Role:         role,
					Email:        email,
					ChainAddress: "0xbank1",
					PasswordHash: hash,
					Approved:     approved,
				}, nil
			},
		}
	}
	post := func(t *testing.T, h *BankHandler, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/bank/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)
		if err := h.Login(c); err != nil {
			t.Fatal(err)
		}
		return rec
	}

	t.Run("approved bank logs in", func(t *testing.T) {
		rec := post(t, newBankHandler(stored(true)), `{"email":"bank@example.com","password":"secret-pass"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
		}
		var res map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		if res["token"] == "" {
			t.Error("expected a token")
		}
	})

	t.Run("unapproved bank gets 401 pending approval", func(t *testing.T) {
		rec := post(t, newBankHandler(stored(false)), `{"email":"bank@example.com","password":"whatever"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong password gets 401", func(t *testing.T) {
		rec := post(t, newBankHandler(stored(true)), `{"email":"bank@example.com","password":"wrong-pass"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("unknown email gets 404", func(t *testing.T) {
		h := newBankHandler(&partymock.Repo{})
		rec := post(t, h, `{"email":"nobody@example.com","password":"whatever"}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
