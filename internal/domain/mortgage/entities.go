package mortgage

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("mortgage not found")
	ErrInvalidTransition = errors.New("invalid mortgage status transition")
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusApproved   Status = "Approved"
	StatusActive     Status = "Active"
	StatusPaidOff    Status = "PaidOff"
	StatusDefaulted  Status = "Defaulted"
	StatusForeclosed Status = "Foreclosed"
)

// OpenStatuses are the statuses under which a mortgage still encumbers its
// property. A PaidOff or Foreclosed mortgage does not block re-application.
var OpenStatuses = []Status{StatusPending, StatusApproved, StatusActive}

type Mortgage struct {
	// MortgageID is assigned by the database sequence, which keeps ids
	// positive integers in request order without the count-then-insert race.
	MortgageID       uint64  `gorm:"primaryKey;column:mortgage_id" json:"mortgage_id"`
	PropertyID       uint64  `gorm:"not null;index:idx_mortgages_property" json:"property_id"`
	PropertyOwner    string  `gorm:"size:64;not null;index:idx_mortgages_owner" json:"property_owner"`
	BankAddress      string  `gorm:"size:64;not null;index:idx_mortgages_bank" json:"bank_address"`
	LoanAmount       float64 `gorm:"type:decimal(18,2);not null" json:"loan_amount"`
	InterestRateBps  int     `gorm:"not null" json:"interest_rate_bps"`
	TenureMonths     int     `gorm:"not null" json:"tenure_months"`
	RemainingBalance float64 `gorm:"type:decimal(18,2);not null" json:"remaining_balance"`
	Status           Status  `gorm:"size:16;not null;default:'Pending'" json:"status"`
	LienActive       bool    `gorm:"not null;default:false" json:"lien_active"`
	IPFSHash         string  `gorm:"size:128" json:"ipfs_hash,omitempty"`

	StartDate       *time.Time `json:"start_date,omitempty"`
	NextPaymentDate *time.Time `json:"next_payment_date,omitempty"`

	Payments []Payment `gorm:"foreignKey:MortgageID;references:MortgageID" json:"payments,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Mortgage) TableName() string { return "mortgages" }

// TotalPaid derives the amount repaid so far.
func (m *Mortgage) TotalPaid() float64 { return m.LoanAmount - m.RemainingBalance }

// Open reports whether the mortgage still counts against the property.
func (m *Mortgage) Open() bool {
	for _, s := range OpenStatuses {
		if m.Status == s {
			return true
		}
	}
	return false
}

// Payment is one append-only ledger entry against a mortgage.
type Payment struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	MortgageID     uint64    `gorm:"not null;index:idx_payments_mortgage" json:"mortgage_id"`
	Amount         float64   `gorm:"type:decimal(18,2);not null" json:"amount"`
	TransactionRef string    `gorm:"size:128" json:"transaction_ref"`
	PaidAt         time.Time `gorm:"not null" json:"paid_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Payment) TableName() string { return "payments" }
