package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// MoodEntryReader defines read operations for mood checkin data
type MoodEntryReader interface {
	// FindEntryByEmployeeAndDate retrieves the entry for the given employee
	// on the given calendar day, or ErrNotFound when none exists.
	FindEntryByEmployeeAndDate(ctx context.Context, employeeID string, checkinDate time.Time) (*domain.MoodEntry, error)

	// FindAllEntries retrieves every entry ordered by checkin date descending.
	FindAllEntries(ctx context.Context) ([]domain.MoodEntry, error)
}

// MoodEntryWriter defines write operations for mood checkin data
type MoodEntryWriter interface {
	// SaveEntry persists a new mood entry.
	SaveEntry(ctx context.Context, entry domain.MoodEntry) error
}

// MoodEntryLifecycleManager defines bulk removal used by the employee cascade.
type MoodEntryLifecycleManager interface {
	// DeleteEntriesByEmployee removes all entries belonging to the employee.
	// Removing zero rows is not an error.
	DeleteEntriesByEmployee(ctx context.Context, employeeID string) error
}

// MoodEntryRepositoryFacade combines all mood-entry repository interfaces
type MoodEntryRepositoryFacade interface {
	MoodEntryReader
	MoodEntryWriter
	MoodEntryLifecycleManager
}

// MoodEntryRepositoryWithTx extends the facade with transaction capabilities
type MoodEntryRepositoryWithTx interface {
	MoodEntryRepositoryFacade

	// WithTx returns a facade whose operations run inside the given transaction
	WithTx(tx pgx.Tx) MoodEntryRepositoryFacade
}
