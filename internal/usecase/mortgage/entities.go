package mortgage

import (
	"time"

	domain "land-registry-backend/internal/domain/mortgage"
)

type ApplyInput struct {
	PropertyID      uint64  `json:"property_id"`
	PropertyOwner   string  `json:"property_owner"`
	BankAddress     string  `json:"bank_address"`
	LoanAmount      float64 `json:"loan_amount"`
	InterestRateBps int     `json:"interest_rate_bps"`
	TenureMonths    int     `json:"tenure_months"`
	IPFSHash        string  `json:"ipfs_hash"`
}

type ApplyResult struct {
	MortgageID uint64        `json:"mortgage_id"`
	Status     domain.Status `json:"status"`
}

type PaymentResult struct {
	MortgageID       uint64        `json:"mortgage_id"`
	RemainingBalance float64       `json:"remaining_balance"`
	Status           domain.Status `json:"status"`
	LienActive       bool          `json:"lien_active"`
	PaidAt           time.Time     `json:"paid_at"`
}

type History struct {
	Payments         []domain.Payment `json:"payments"`
	TotalPaid        float64          `json:"total_paid"`
	RemainingBalance float64          `json:"remaining_balance"`
}
