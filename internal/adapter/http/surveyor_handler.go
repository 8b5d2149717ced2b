package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"land-registry-backend/internal/adapter/middleware"
	partyDomain "land-registry-backend/internal/domain/party"
	partyUC "land-registry-backend/internal/usecase/party"
	surveyUC "land-registry-backend/internal/usecase/survey"
)

type SurveyorHandler struct {
	parties *partyUC.Usecase
	surveys *surveyUC.Usecase
}

func NewSurveyorHandler(parties *partyUC.Usecase, surveys *surveyUC.Usecase) *SurveyorHandler {
	return &SurveyorHandler{parties: parties, surveys: surveys}
}

type registerSurveyorReq struct {
	Name            string `json:"name"             validate:"required"`
	LicenseNumber   string `json:"license_number"   validate:"required"`
	Contact         string `json:"contact"`
	Email           string `json:"email"            validate:"required,email"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
	ChainAddress    string `json:"chain_address"    validate:"required"`
	Password        string `json:"password"         validate:"required,min=8"`
}

func (h *SurveyorHandler) Register(c echo.Context) error {
	var req registerSurveyorReq
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
		Role:            partyDomain.RoleSurveyor,
		Name:            req.Name,
		Contact:         req.Contact,
		LicenseNumber:   req.LicenseNumber,
		ChainAddress:    req.ChainAddress,
		Email:           req.Email,
		Password:        req.Password,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":     "Surveyor registration successful! Pending government approval.",
		"surveyor_id": id,
	})
}

func (h *SurveyorHandler) Login(c echo.Context) error {
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

	res, err := h.parties.Authenticate(c.Request().Context(), partyDomain.RoleSurveyor, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": res.Token,
		"surveyor": map[string]any{
			"name":           res.Party.Name,
			"chain_address":  res.Party.ChainAddress,
			"license_number": res.Party.LicenseNumber,
		},
	})
}

func (h *SurveyorHandler) Profile(c echo.Context) error {
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

func (h *SurveyorHandler) Surveys(c echo.Context) error {
	claims := middleware.AuthClaims(c)
	list, err := h.surveys.ListForSurveyor(c.Request().Context(), claims.ChainAddress)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SurveyorHandler) SurveyDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid survey id"})
	}
	s, err := h.surveys.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
