package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	surveyDomain "land-registry-backend/internal/domain/survey"
	surveyUC "land-registry-backend/internal/usecase/survey"
)

type SurveyHandler struct{ uc *surveyUC.Usecase }

func NewSurveyHandler(uc *surveyUC.Usecase) *SurveyHandler { return &SurveyHandler{uc: uc} }

type requestSurveyReq struct {
	PropertyID    uint64 `json:"property_id"    validate:"required,gt=0"`
	PropertyOwner string `json:"property_owner" validate:"required"`
	RequestedBy   string `json:"requested_by"   validate:"required"`
	SurveyType    string `json:"survey_type"    validate:"required,oneof=Boundary Topographic Construction Subdivision Other"`
}

func (h *SurveyHandler) Request(c echo.Context) error {
	var req requestSurveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Request(c.Request().Context(), surveyUC.RequestInput{
		PropertyID:    req.PropertyID,
		PropertyOwner: req.PropertyOwner,
		RequestedBy:   req.RequestedBy,
		SurveyType:    surveyDomain.Type(req.SurveyType),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type assignSurveyReq struct {
	SurveyorAddress string `json:"surveyor_address" validate:"required"`
	AssignedBy      string `json:"assigned_by"      validate:"required"`
}

func (h *SurveyHandler) Assign(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid survey id"})
	}
	var req assignSurveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	s, err := h.uc.Assign(c.Request().Context(), id, req.SurveyorAddress, req.AssignedBy)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

type submitSurveyReq struct {
	IPFSHash       string     `json:"ipfs_hash"       validate:"required"`
	GPSCoordinates string     `json:"gps_coordinates"`
	SurveyDate     *time.Time `json:"survey_date,omitempty"`
}

func (h *SurveyHandler) Submit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid survey id"})
	}
	var req submitSurveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	s, err := h.uc.Submit(c.Request().Context(), id, surveyUC.SubmitInput{
		IPFSHash:       req.IPFSHash,
		GPSCoordinates: req.GPSCoordinates,
		SurveyDate:     req.SurveyDate,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

type verifySurveyReq struct {
	Approved   *bool  `json:"approved"    validate:"required"`
	Remarks    string `json:"remarks"`
	VerifiedBy string `json:"verified_by" validate:"required"`
}

func (h *SurveyHandler) Verify(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid survey id"})
	}
	var req verifySurveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	s, err := h.uc.Verify(c.Request().Context(), id, *req.Approved, req.Remarks, req.VerifiedBy)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SurveyHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SurveyHandler) ForProperty(c echo.Context) error {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
	}
	list, err := h.uc.ListForProperty(c.Request().Context(), propertyID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SurveyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid survey id"})
	}
	s, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
