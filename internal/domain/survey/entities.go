package survey

import (
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("survey not found")
	ErrInvalidTransition   = errors.New("invalid survey status transition")
	ErrSurveyorNotEligible = errors.New("surveyor is unknown or not approved")
)

type Type string

const (
	TypeBoundary     Type = "Boundary"
	TypeTopographic  Type = "Topographic"
	TypeConstruction Type = "Construction"
	TypeSubdivision  Type = "Subdivision"
	TypeOther        Type = "Other"
)

type Status string

const (
	StatusPending           Status = "Pending"
	StatusAssigned          Status = "Assigned"
	StatusInProgress        Status = "InProgress"
	StatusSubmitted         Status = "Submitted"
	StatusApproved          Status = "Approved"
	StatusRevisionRequested Status = "RevisionRequested"
	StatusRejected          Status = "Rejected"
)

type Survey struct {
	// SurveyID is database-assigned, same scheme as mortgage ids.
	SurveyID      uint64 `gorm:"primaryKey;column:survey_id" json:"survey_id"`
	PropertyID    uint64 `gorm:"not null;index:idx_surveys_property" json:"property_id"`
	PropertyOwner string `gorm:"size:64;not null" json:"property_owner"`
	RequestedBy   string `gorm:"size:255;not null" json:"requested_by"`
	SurveyType    Type   `gorm:"size:32;not null" json:"survey_type"`
	Status        Status `gorm:"size:32;not null;default:'Pending'" json:"status"`

	SurveyorAddress string `gorm:"size:64;index:idx_surveys_surveyor" json:"surveyor_address,omitempty"`
	AssignedBy      string `gorm:"size:255" json:"assigned_by,omitempty"`
	VerifiedBy      string `gorm:"size:255" json:"verified_by,omitempty"`
	Remarks         string `gorm:"type:text" json:"remarks,omitempty"`

	IPFSHash       string     `gorm:"size:128" json:"ipfs_hash,omitempty"`
	GPSCoordinates string     `gorm:"size:128" json:"gps_coordinates,omitempty"`
	SurveyDate     *time.Time `json:"survey_date,omitempty"`
	SubmissionDate *time.Time `json:"submission_date,omitempty"`
	VerifiedDate   *time.Time `json:"verified_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Survey) TableName() string { return "surveys" }

// Submittable reports whether a report can be filed at the current status.
func (s *Survey) Submittable() bool {
	return s.Status == StatusAssigned || s.Status == StatusInProgress
}
