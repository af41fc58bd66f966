package models

import "time"

// MoodEntry is the database representation of a mood checkin row.
type MoodEntry struct {
	EntryID            string    `json:"entryID" db:"entry_id"`
	EmployeeID         string    `json:"employeeID" db:"employee_id"`
	CheckinDate        time.Time `json:"checkinDate" db:"checkin_date"`
	EnergyLevel        int       `json:"energyLevel" db:"energy_level"`
	Feeling            string    `json:"feeling" db:"feeling"`
	DemandVolume       string    `json:"demandVolume" db:"demand_volume"`
	Blockers           string    `json:"blockers" db:"blockers"`
	WorkLifeDisconnect string    `json:"workLifeDisconnect" db:"work_life_disconnect"`
	ConnectionLevel    int       `json:"connectionLevel" db:"connection_level"`
	InteractionQuality string    `json:"interactionQuality" db:"interaction_quality"`
	SleepQuality       string    `json:"sleepQuality" db:"sleep_quality"`
	PauseStatus        string    `json:"pauseStatus" db:"pause_status"`
	SmallWin           string    `json:"smallWin" db:"small_win"`
}
