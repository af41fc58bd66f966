package dto

import (
	"time"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// SubmitCheckinRequest maps the ten daily questionnaire answers.
// Validation mirrors the questionnaire constraints: the two level answers
// are 1..5 scales, the free-text answers are length-capped, and blockers
// plus the small win are optional.
type SubmitCheckinRequest struct {
	EmployeeID  string `json:"employeeID" binding:"required"`
	CheckinDate string `json:"checkinDate" binding:"required,datetime=2006-01-02"`

	EnergyLevel        int    `json:"energyLevel" binding:"required,min=1,max=5"`
	Feeling            string `json:"feeling" binding:"required,max=50"`
	DemandVolume       string `json:"demandVolume" binding:"required"`
	Blockers           string `json:"blockers" binding:"omitempty,max=250"`
	WorkLifeDisconnect string `json:"workLifeDisconnect" binding:"required"`
	ConnectionLevel    int    `json:"connectionLevel" binding:"required,min=1,max=5"`
	InteractionQuality string `json:"interactionQuality" binding:"required"`
	SleepQuality       string `json:"sleepQuality" binding:"required"`
	PauseStatus        string `json:"pauseStatus" binding:"required"`
	SmallWin           string `json:"smallWin" binding:"omitempty,max=250"`
}

// CheckinResponse is the outward representation of a stored mood entry.
type CheckinResponse struct {
	EntryID            string    `json:"entryID"`
	EmployeeID         string    `json:"employeeID"`
	CheckinDate        time.Time `json:"checkinDate"`
	EnergyLevel        int       `json:"energyLevel"`
	Feeling            string    `json:"feeling"`
	DemandVolume       string    `json:"demandVolume"`
	Blockers           string    `json:"blockers,omitempty"`
	WorkLifeDisconnect string    `json:"workLifeDisconnect"`
	ConnectionLevel    int       `json:"connectionLevel"`
	InteractionQuality string    `json:"interactionQuality"`
	SleepQuality       string    `json:"sleepQuality"`
	PauseStatus        string    `json:"pauseStatus"`
	SmallWin           string    `json:"smallWin,omitempty"`
}

// ToCheckinResponse converts a domain.MoodEntry to its response DTO.
func ToCheckinResponse(e *domain.MoodEntry) CheckinResponse {
	return CheckinResponse{
		EntryID:            e.EntryID,
		EmployeeID:         e.EmployeeID,
		CheckinDate:        e.CheckinDate,
		EnergyLevel:        e.EnergyLevel,
		Feeling:            e.Feeling,
		DemandVolume:       e.DemandVolume,
		Blockers:           e.Blockers,
		WorkLifeDisconnect: e.WorkLifeDisconnect,
		ConnectionLevel:    e.ConnectionLevel,
		InteractionQuality: e.InteractionQuality,
		SleepQuality:       e.SleepQuality,
		PauseStatus:        e.PauseStatus,
		SmallWin:           e.SmallWin,
	}
}

// ListCheckinsResponse wraps the identified checkin history.
type ListCheckinsResponse struct {
	Checkins []CheckinResponse `json:"checkins"`
}

// ToListCheckinsResponse converts a slice of domain.MoodEntry to its response DTO.
func ToListCheckinsResponse(entries []domain.MoodEntry) ListCheckinsResponse {
	responses := make([]CheckinResponse, len(entries))
	for i := range entries {
		responses[i] = ToCheckinResponse(&entries[i])
	}
	return ListCheckinsResponse{Checkins: responses}
}

// AnonymousCheckinResponse carries one anonymized history record.
type AnonymousCheckinResponse struct {
	CheckinDate        time.Time `json:"checkinDate"`
	EnergyLevel        int       `json:"energyLevel"`
	Feeling            string    `json:"feeling"`
	DemandVolume       string    `json:"demandVolume"`
	Blockers           string    `json:"blockers,omitempty"`
	WorkLifeDisconnect string    `json:"workLifeDisconnect"`
	ConnectionLevel    int       `json:"connectionLevel"`
	InteractionQuality string    `json:"interactionQuality"`
	SleepQuality       string    `json:"sleepQuality"`
	PauseStatus        string    `json:"pauseStatus"`
	SmallWin           string    `json:"smallWin,omitempty"`
}

// ListAnonymousCheckinsResponse wraps the anonymized checkin history.
type ListAnonymousCheckinsResponse struct {
	Checkins []AnonymousCheckinResponse `json:"checkins"`
}

// ToListAnonymousCheckinsResponse converts anonymized entries to their response DTO.
func ToListAnonymousCheckinsResponse(entries []domain.AnonymousMoodEntry) ListAnonymousCheckinsResponse {
	responses := make([]AnonymousCheckinResponse, len(entries))
	for i, e := range entries {
		responses[i] = AnonymousCheckinResponse{
			CheckinDate:        e.CheckinDate,
			EnergyLevel:        e.EnergyLevel,
			Feeling:            e.Feeling,
			DemandVolume:       e.DemandVolume,
			Blockers:           e.Blockers,
			WorkLifeDisconnect: e.WorkLifeDisconnect,
			ConnectionLevel:    e.ConnectionLevel,
			InteractionQuality: e.InteractionQuality,
			SleepQuality:       e.SleepQuality,
			PauseStatus:        e.PauseStatus,
			SmallWin:           e.SmallWin,
		}
	}
	return ListAnonymousCheckinsResponse{Checkins: responses}
}
