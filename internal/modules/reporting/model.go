// README: Read model row types for dashboards and exports.
package reporting

import (
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

// PendingTrip is a requested trip joined with its vehicle and requester,
// with the request age computed at query time.
type PendingTrip struct {
	TripID       types.ID
	Reason       string
	CreatedAt    time.Time
	Age          time.Duration
	VehicleModel string
	VehiclePlate string
	Registration string
}

// ActiveTrip is an in-use trip joined with its vehicle and requester.
// StartedAt is rendered in the configured report time zone.
type ActiveTrip struct {
	TripID       types.ID
	Reason       string
	StartedAt    time.Time
	VehicleModel string
	VehiclePlate string
	Registration string
}

// OwnTrip is one of the caller's trips with its vehicle and the elapsed time
// since creation.
type OwnTrip struct {
	TripID       types.ID
	Status       string
	Reason       string
	CreatedAt    time.Time
	StartedAt    *time.Time
	EndedAt      *time.Time
	Elapsed      time.Duration
	VehicleModel string
	VehiclePlate string
}

// CompletedRow is one finalized trip in the export view.
type CompletedRow struct {
	Registration  string
	VehicleModel  string
	VehiclePlate  string
	Reason        string
	StartedAt     time.Time
	EndedAt       time.Time
	DurationDays  int
	DurationHours float64
}

type Stats struct {
	VehiclesTotal     int `json:"vehicles_total"`
	VehiclesActive    int `json:"vehicles_active"`
	VehiclesAvailable int `json:"vehicles_available"`
	AccountsTotal     int `json:"accounts_total"`
	TripsRequested    int `json:"trips_requested"`
	TripsActive       int `json:"trips_active"`
	TripsCompleted    int `json:"trips_completed"`
	TripsExpired      int `json:"trips_expired"`
}
