package dto

import "github.com/vivabem/wellbeing_tracker_app/internal/core/domain"

// TeamResponse is the outward representation of a team.
type TeamResponse struct {
	TeamID string `json:"teamID"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Sector string `json:"sector"`
}

// ToTeamResponse converts a domain.Team to its response DTO.
func ToTeamResponse(t *domain.Team) TeamResponse {
	return TeamResponse{TeamID: t.TeamID, Name: t.Name, Code: t.Code, Sector: t.Sector}
}

// ListTeamsResponse wraps the team reference list.
type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ToListTeamsResponse converts a slice of domain.Team to its response DTO.
func ToListTeamsResponse(teams []domain.Team) ListTeamsResponse {
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = ToTeamResponse(&teams[i])
	}
	return ListTeamsResponse{Teams: responses}
}

// RoleResponse is the outward representation of a role.
type RoleResponse struct {
	RoleID int    `json:"roleID"`
	Name   string `json:"name"`
}

// ListRolesResponse wraps the role reference list.
type ListRolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// ToListRolesResponse converts a slice of domain.Role to its response DTO.
func ToListRolesResponse(roles []domain.Role) ListRolesResponse {
	responses := make([]RoleResponse, len(roles))
	for i, r := range roles {
		responses[i] = RoleResponse{RoleID: r.RoleID, Name: r.Name}
	}
	return ListRolesResponse{Roles: responses}
}
