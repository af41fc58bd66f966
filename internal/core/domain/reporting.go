package domain

// TeamMoodReport is a derived aggregate, never persisted: the average
// energy level and entry count of one team's mood entries.
type TeamMoodReport struct {
	TeamID        string  `json:"teamID"`
	TeamName      string  `json:"teamName"`
	AverageEnergy float64 `json:"averageEnergy"`
	CheckinCount  int     `json:"checkinCount"`
}
