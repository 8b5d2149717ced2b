package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	registrarUC "land-registry-backend/internal/usecase/registrar"
)

type RegistrarHandler struct {
	uc   *registrarUC.Usecase
	seed registrarUC.SeedInput
}

func NewRegistrarHandler(uc *registrarUC.Usecase, seed registrarUC.SeedInput) *RegistrarHandler {
	return &RegistrarHandler{uc: uc, seed: seed}
}

// Seed creates the government account from configuration. Safe to call more
// than once.
func (h *RegistrarHandler) Seed(c echo.Context) error {
	if err := h.uc.Seed(c.Request().Context(), h.seed); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Government registrar account is ready",
	})
}

type registrarLoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *RegistrarHandler) Login(c echo.Context) error {
	var req registrarLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	tok, err := h.uc.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"token": tok})
}

type signupOwnerReq struct {
	Email      string `json:"email"       validate:"required,email"`
	Name       string `json:"name"        validate:"required"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

func (h *RegistrarHandler) SignupOwner(c echo.Context) error {
	var req signupOwnerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	id, err := h.uc.SignupOwner(c.Request().Context(), registrarUC.SignupOwnerInput{
		Email:      req.Email,
		Name:       req.Name,
		Contact:    req.Contact,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "Thanks for registering!",
		"owner_id": id,
	})
}

func (h *RegistrarHandler) PendingBanks(c echo.Context) error {
	list, err := h.uc.PendingBanks(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *RegistrarHandler) PendingSurveyors(c echo.Context) error {
	list, err := h.uc.PendingSurveyors(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type approvePartyReq struct {
	ApprovedBy string `json:"approved_by" validate:"required"`
}

func (h *RegistrarHandler) ApproveBank(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid party id"})
	}
	var req approvePartyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	p, err := h.uc.ApproveBank(c.Request().Context(), id, req.ApprovedBy)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Bank approved successfully",
		"bank":    p,
	})
}

func (h *RegistrarHandler) RejectBank(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid party id"})
	}
	if err := h.uc.RejectBank(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Bank rejected and removed"})
}

func (h *RegistrarHandler) ApproveSurveyor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid party id"})
	}
	var req approvePartyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	p, err := h.uc.ApproveSurveyor(c.Request().Context(), id, req.ApprovedBy)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":  "Surveyor approved successfully",
		"surveyor": p,
	})
}

func (h *RegistrarHandler) RejectSurveyor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid party id"})
	}
	if err := h.uc.RejectSurveyor(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Surveyor rejected and removed"})
}

type notifyReq struct {
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (h *RegistrarHandler) Notify(c echo.Context) error {
	var req notifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.Notify(req.Email, req.Subject, req.Message); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Mail sent!"})
}
