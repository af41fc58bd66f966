package models

// Team is the database representation of a team row.
type Team struct {
	TeamID string `json:"teamID" db:"team_id"`
	Name   string `json:"name" db:"name"`
	Code   string `json:"code" db:"code"`
	Sector string `json:"sector" db:"sector"`
}

// Role is the database representation of a role row.
type Role struct {
	RoleID int    `json:"roleID" db:"role_id"`
	Name   string `json:"name" db:"name"`
}

// WellbeingResource is the database representation of a resource row.
type WellbeingResource struct {
	ResourceID string `json:"resourceID" db:"resource_id"`
	Name       string `json:"name" db:"name"`
	Kind       string `json:"kind" db:"kind"`
	Link       string `json:"link" db:"link"`
}
