package domain

import "time"

// MoodEntry is one daily well-being questionnaire submission.
// At most one entry may exist per (EmployeeID, CheckinDate) pair; the
// service enforces this with a read-before-write check and the schema
// carries a unique constraint as a backstop against concurrent submits.
type MoodEntry struct {
	EntryID     string    `json:"entryID"` // Primary Key (UUID)
	EmployeeID  string    `json:"employeeID"`
	CheckinDate time.Time `json:"checkinDate"` // date precision only

	// Energy and mood
	EnergyLevel int    `json:"energyLevel"` // 1..5
	Feeling     string `json:"feeling"`

	// Workload and stress
	DemandVolume       string `json:"demandVolume"`
	Blockers           string `json:"blockers,omitempty"`
	WorkLifeDisconnect string `json:"workLifeDisconnect"`

	// Social connection
	ConnectionLevel    int    `json:"connectionLevel"` // 1..5
	InteractionQuality string `json:"interactionQuality"`

	// Physical and environment
	SleepQuality string `json:"sleepQuality"`
	PauseStatus  string `json:"pauseStatus"`

	// Positive reinforcement
	SmallWin string `json:"smallWin,omitempty"`
}

// AnonymousMoodEntry is a MoodEntry with the employee identity stripped.
// Every questionnaire field survives anonymization; only the link back to
// the submitting employee is removed.
type AnonymousMoodEntry struct {
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

// Anonymize strips the employee identity from the entry.
func (e MoodEntry) Anonymize() AnonymousMoodEntry {
	return AnonymousMoodEntry{
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
