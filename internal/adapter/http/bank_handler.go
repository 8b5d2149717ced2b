package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"land-registry-backend/internal/adapter/middleware"
	partyDomain "land-registry-backend/internal/domain/party"
	mortgageUC "land-registry-backend/internal/usecase/mortgage"
	partyUC "land-registry-backend/internal/usecase/party"
)

type BankHandler struct {
	parties   *partyUC.Usecase
	mortgages *mortgageUC.Usecase
}

func NewBankHandler(parties *partyUC.Usecase, mortgages *mortgageUC.Usecase) *BankHandler {
	return &BankHandler{parties: parties, mortgages: mortgages}
}

type registerBankReq struct {
	Name          string `json:"name"            validate:"required"`
	BranchAddress string `json:"branch_address"`
	Contact       string `json:"contact"`
	LicenseNumber string `json:"license_number"  validate:"required"`
	ChainAddress  string `json:"chain_address"   validate:"required"`
	Email         string `json:"email"           validate:"required,email"`
	Password      string `json:"password"        validate:"required,min=8"`
}

func (h *BankHandler) Register(c echo.Context) error {
	var req registerBankReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	id, err := h.parties.Register(c.Request().Context(), partyUC.RegisterInput{
		Role:          partyDomain.RoleBank,
		Name:          req.Name,
		Contact:       req.Contact,
		LicenseNumber: req.LicenseNumber,
		ChainAddress:  req.ChainAddress,
		Email:         req.Email,
		Password:      req.Password,
		BranchAddress: req.BranchAddress,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Bank registration successful! Pending government approval.",
		"bank_id": id,
	})
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *BankHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.parties.Authenticate(c.Request().Context(), partyDomain.RoleBank, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": res.Token,
		"bank": map[string]any{
			"name":           res.Party.Name,
			"chain_address":  res.Party.ChainAddress,
			"license_number": res.Party.LicenseNumber,
		},
	})
}

func (h *BankHandler) Profile(c echo.Context) error {
	claims := middleware.AuthClaims(c)
	id, err := claims.SubjectID()
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid token subject"})
	}
	p, err := h.parties.Profile(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *BankHandler) Mortgages(c echo.Context) error {
	claims := middleware.AuthClaims(c)
	list, err := h.mortgages.ListForBank(c.Request().Context(), claims.ChainAddress)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *BankHandler) MortgageDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mortgage id"})
	}
	m, err := h.mortgages.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}
