package domain

// Team is reference data describing an organizational unit.
// The core never writes teams; they are seeded by migrations.
type Team struct {
	TeamID string `json:"teamID"` // Primary Key (UUID)
	Name   string `json:"name"`
	Code   string `json:"code"` // short code, e.g. "PLT"
	Sector string `json:"sector"`
}
