package survey

import (
	"time"

	domain "land-registry-backend/internal/domain/survey"
)

type RequestInput struct {
	PropertyID    uint64      `json:"property_id"`
	PropertyOwner string      `json:"property_owner"`
	RequestedBy   string      `json:"requested_by"`
	SurveyType    domain.Type `json:"survey_type"`
}

type RequestResult struct {
	SurveyID uint64        `json:"survey_id"`
	Status   domain.Status `json:"status"`
}

type SubmitInput struct {
	IPFSHash       string     `json:"ipfs_hash"`
	GPSCoordinates string     `json:"gps_coordinates"`
	SurveyDate     *time.Time `json:"survey_date,omitempty"`
}
