package mapping

import (
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	"github.com/vivabem/wellbeing_tracker_app/internal/models"
)

// ToModelMoodEntry converts a domain MoodEntry to a model MoodEntry
func ToModelMoodEntry(d domain.MoodEntry) models.MoodEntry {
	return models.MoodEntry{
		EntryID:            d.EntryID,
		EmployeeID:         d.EmployeeID,
		CheckinDate:        d.CheckinDate,
		EnergyLevel:        d.EnergyLevel,
		Feeling:            d.Feeling,
		DemandVolume:       d.DemandVolume,
		Blockers:           d.Blockers,
		WorkLifeDisconnect: d.WorkLifeDisconnect,
		ConnectionLevel:    d.ConnectionLevel,
		InteractionQuality: d.InteractionQuality,
		SleepQuality:       d.SleepQuality,
		PauseStatus:        d.PauseStatus,
		SmallWin:           d.SmallWin,
	}
}

// ToDomainMoodEntry converts a model MoodEntry to a domain MoodEntry
func ToDomainMoodEntry(m models.MoodEntry) domain.MoodEntry {
	return domain.MoodEntry{
		EntryID:            m.EntryID,
		EmployeeID:         m.EmployeeID,
		CheckinDate:        m.CheckinDate,
		EnergyLevel:        m.EnergyLevel,
		Feeling:            m.Feeling,
		DemandVolume:       m.DemandVolume,
		Blockers:           m.Blockers,
		WorkLifeDisconnect: m.WorkLifeDisconnect,
		ConnectionLevel:    m.ConnectionLevel,
		InteractionQuality: m.InteractionQuality,
		SleepQuality:       m.SleepQuality,
		PauseStatus:        m.PauseStatus,
		SmallWin:           m.SmallWin,
	}
}

// ToDomainMoodEntrySlice converts a slice of model MoodEntries to domain MoodEntries
func ToDomainMoodEntrySlice(ms []models.MoodEntry) []domain.MoodEntry {
	ds := make([]domain.MoodEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoodEntry(m)
	}
	return ds
}
