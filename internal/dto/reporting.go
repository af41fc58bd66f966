package dto

import "github.com/vivabem/wellbeing_tracker_app/internal/core/domain"

// TeamMoodReportResponse is one dashboard row.
type TeamMoodReportResponse struct {
	TeamID        string  `json:"teamID"`
	TeamName      string  `json:"teamName"`
	AverageEnergy float64 `json:"averageEnergy"`
	CheckinCount  int     `json:"checkinCount"`
}

// DashboardResponse wraps the dashboard rows visible to the actor.
type DashboardResponse struct {
	Reports []TeamMoodReportResponse `json:"reports"`
}

// ToDashboardResponse converts a slice of domain.TeamMoodReport to its response DTO.
func ToDashboardResponse(reports []domain.TeamMoodReport) DashboardResponse {
	responses := make([]TeamMoodReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = TeamMoodReportResponse{
			TeamID:        r.TeamID,
			TeamName:      r.TeamName,
			AverageEnergy: r.AverageEnergy,
			CheckinCount:  r.CheckinCount,
		}
	}
	return DashboardResponse{Reports: responses}
}
