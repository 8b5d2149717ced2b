package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"land-registry-backend/internal/adapter/middleware"
	mortgageUC "land-registry-backend/internal/usecase/mortgage"
)

type MortgageHandler struct{ uc *mortgageUC.Usecase }

func NewMortgageHandler(uc *mortgageUC.Usecase) *MortgageHandler {
	return &MortgageHandler{uc: uc}
}

type applyMortgageReq struct {
	PropertyID      uint64  `json:"property_id"       validate:"required,gt=0"`
	PropertyOwner   string  `json:"property_owner"    validate:"required"`
	BankAddress     string  `json:"bank_address"      validate:"required"`
	LoanAmount      float64 `json:"loan_amount"       validate:"required,gt=0"`
	InterestRateBps int     `json:"interest_rate_bps" validate:"gte=0"`
	TenureMonths    int     `json:"tenure_months"     validate:"required,gt=0"`
	IPFSHash        string  `json:"ipfs_hash"`
}

func (h *MortgageHandler) Apply(c echo.Context) error {
	var req applyMortgageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Apply(c.Request().Context(), mortgageUC.ApplyInput(req))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *MortgageHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mortgage id"})
	}
	claims := middleware.AuthClaims(c)
	m, err := h.uc.Approve(c.Request().Context(), id, claims.ChainAddress)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MortgageHandler) Activate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mortgage id"})
	}
	claims := middleware.AuthClaims(c)
	m, err := h.uc.Activate(c.Request().Context(), id, claims.ChainAddress)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

type recordPaymentReq struct {
	Amount         float64 `json:"amount"          validate:"required,gt=0"`
	TransactionRef string  `json:"transaction_ref"`
}

func (h *MortgageHandler) RecordPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mortgage id"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.RecordPayment(c.Request().Context(), id, req.Amount, req.TransactionRef)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *MortgageHandler) History(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mortgage id"})
	}
	res, err := h.uc.History(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *MortgageHandler) ForProperty(c echo.Context) error {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
	}
	m, err := h.uc.FindForProperty(c.Request().Context(), propertyID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MortgageHandler) MyMortgages(c echo.Context) error {
	owner := c.QueryParam("propertyOwner")
	if owner == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "property owner address required"})
	}
	list, err := h.uc.ListForOwner(c.Request().Context(), owner)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
