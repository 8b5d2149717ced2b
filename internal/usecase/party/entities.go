package party

import domain "land-registry-backend/internal/domain/party"

type RegisterInput struct {
	Role          domain.Role
	Name          string
	Contact       string
	LicenseNumber string
	ChainAddress  string
	Email         string
	Password      string

	// bank-only
	BranchAddress string
	// surveyor-only
	Specialization  string
	ExperienceYears int
}

type AuthResult struct {
	Token string        `json:"token"`
	Party *domain.Party `json:"party"`
}
