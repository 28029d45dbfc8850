// README: Trip aggregate and status definitions.
package booking

import (
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type Status string

const (
	StatusRequested Status = "requested"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
)

type Trip struct {
	ID            types.ID
	AccountID     types.ID
	VehicleID     types.ID
	Reason        string
	Status        Status
	CreatedAt     time.Time
	StartedAt     *time.Time
	EndedAt       *time.Time
	DurationDays  *int
	DurationHours *float64
}

// Open reports whether the trip still holds its vehicle.
func (t *Trip) Open() bool {
	return t.Status == StatusRequested || t.Status == StatusActive
}

// AllowedTransitions represents the trip state flow as code. Completed and
// expired are terminal; active trips never expire.
var AllowedTransitions = map[Status][]Status{
	StatusRequested: {StatusActive, StatusExpired},
	StatusActive:    {StatusCompleted},
	StatusCompleted: {},
	StatusExpired:   {},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// SplitDuration derives the two completion duration fields from one elapsed
// value: a truncated whole-day count and the total elapsed hours. The hour
// total is not the remainder after the day count; 26h elapsed yields 1 day
// and 26.0 hours.
func SplitDuration(elapsed time.Duration) (days int, hours float64) {
	return int(elapsed / (24 * time.Hour)), elapsed.Hours()
}
