package domain

// Role is reference data describing an employee's function.
// Role IDs are small integers so the configured HR/manager role IDs
// (see pkg/config) stay stable across environments.
type Role struct {
	RoleID int    `json:"roleID"`
	Name   string `json:"name"`
}

// TeamScope describes which teams an actor may see on the dashboard.
// AllTeams true means no filtering; otherwise only TeamID is visible.
type TeamScope struct {
	AllTeams bool   `json:"allTeams"`
	TeamID   string `json:"teamID,omitempty"`
}
