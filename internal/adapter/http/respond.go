package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	mortgageDomain "land-registry-backend/internal/domain/mortgage"
	partyDomain "land-registry-backend/internal/domain/party"
	surveyDomain "land-registry-backend/internal/domain/survey"
	mortgageUC "land-registry-backend/internal/usecase/mortgage"
	partyUC "land-registry-backend/internal/usecase/party"
	registrarUC "land-registry-backend/internal/usecase/registrar"
	surveyUC "land-registry-backend/internal/usecase/survey"
)

// fail maps domain errors onto HTTP status codes. Every failure is local to
// the one operation that raised it; nothing is retried here.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, partyDomain.ErrNotFound),
		errors.Is(err, mortgageDomain.ErrNotFound),
		errors.Is(err, surveyDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, partyDomain.ErrDuplicate):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, partyDomain.ErrPendingApproval),
		errors.Is(err, partyDomain.ErrWrongPassword):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, mortgageDomain.ErrInvalidTransition),
		errors.Is(err, surveyDomain.ErrInvalidTransition),
		errors.Is(err, surveyDomain.ErrSurveyorNotEligible):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, partyUC.ErrInvalidInput),
		errors.Is(err, mortgageUC.ErrInvalidInput),
		errors.Is(err, surveyUC.ErrInvalidInput),
		errors.Is(err, registrarUC.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "server error"})
	}
}

// pathID parses a numeric :id path param.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
