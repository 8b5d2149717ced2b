package party

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("party not found")
	ErrDuplicate       = errors.New("party already exists with this license number, email, or chain address")
	ErrPendingApproval = errors.New("registration pending government approval")
	ErrWrongPassword   = errors.New("incorrect password")
)

type Role string

const (
	RoleBank     Role = "bank"
	RoleSurveyor Role = "surveyor"
)

// Party is a bank or surveyor awaiting (or holding) government approval.
// License number, chain address and email are each unique per role.
type Party struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"party_id"`
	Role          Role   `gorm:"size:16;not null;uniqueIndex:ux_parties_role_license,priority:1;uniqueIndex:ux_parties_role_chain,priority:1;uniqueIndex:ux_parties_role_email,priority:1" json:"role"`
	Name          string `gorm:"size:255;not null" json:"name"`
	Contact       string `gorm:"size:64" json:"contact"`
	LicenseNumber string `gorm:"size:64;not null;uniqueIndex:ux_parties_role_license,priority:2" json:"license_number"`
	ChainAddress  string `gorm:"size:64;not null;uniqueIndex:ux_parties_role_chain,priority:2" json:"chain_address"`
	Email         string `gorm:"size:255;not null;uniqueIndex:ux_parties_role_email,priority:2" json:"email"`
	PasswordHash  string `gorm:"size:128;not null" json:"-"`

	// Role-specific details: banks carry a branch address, surveyors a
	// specialization and years of experience.
	BranchAddress   string `gorm:"size:255" json:"branch_address,omitempty"`
	Specialization  string `gorm:"size:128" json:"specialization,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`

	Approved     bool       `gorm:"not null;default:false" json:"approved"`
	ApprovedBy   *string    `gorm:"size:255" json:"approved_by,omitempty"`
	ApprovedDate *time.Time `json:"approved_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Party) TableName() string { return "parties" }

// Owner is a property owner contact record. Owners need no password and no
// approval; ownership itself lives on chain.
type Owner struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"owner_id"`
	Email      string    `gorm:"size:255;not null;uniqueIndex:ux_owners_email" json:"email"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Contact    string    `gorm:"size:64" json:"contact"`
	Address    string    `gorm:"size:255" json:"address"`
	City       string    `gorm:"size:128" json:"city"`
	PostalCode string    `gorm:"size:32" json:"postal_code"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Owner) TableName() string { return "owners" }

// Registrar is the government account that approves parties and verifies
// surveys.
type Registrar struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"registrar_id"`
	Username     string    `gorm:"size:128;not null;uniqueIndex:ux_registrars_username" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Address      string    `gorm:"size:255" json:"address"`
	Contact      string    `gorm:"size:64" json:"contact"`
	City         string    `gorm:"size:128" json:"city"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Registrar) TableName() string { return "registrars" }
