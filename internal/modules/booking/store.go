// README: Trip store backed by PostgreSQL; all writes are guarded inserts or conditional updates.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// CreateRequested inserts a trip in requested status if and only if the
// vehicle exists, is active, and has no open trip. The vehicle row is locked
// for the duration of the check-and-insert, so two racing requests for the
// same vehicle serialize: one commits, the other sees the open trip.
func (s *Store) CreateRequested(ctx context.Context, t *Trip) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var active bool
	err = tx.QueryRow(ctx, `
		SELECT active FROM vehicles WHERE id = $1 FOR UPDATE`,
		string(t.VehicleID),
	).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !active {
		return ErrNotFound
	}

	var open bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM trips
			WHERE vehicle_id = $1 AND status IN ('requested', 'active')
		)`, string(t.VehicleID),
	).Scan(&open)
	if err != nil {
		return err
	}
	if open {
		return ErrConflict
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO trips (id, account_id, vehicle_id, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(t.ID), string(t.AccountID), string(t.VehicleID),
		t.Reason, string(t.Status), t.CreatedAt,
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Trip, error) {
	row := s.db.QueryRow(ctx, tripColumns+` FROM trips WHERE id = $1`, string(id))
	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MarkActive transitions requested → active, stamping the start time. Returns
// false when the trip is not currently in requested status.
func (s *Store) MarkActive(ctx context.Context, id types.ID, startedAt time.Time) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE trips
		SET status = 'active', started_at = $1
		WHERE id = $2 AND status = 'requested'`,
		startedAt, string(id),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkCompleted transitions active → completed in a single write, stamping
// the end time and both duration fields together so no partial completion is
// ever visible.
func (s *Store) MarkCompleted(ctx context.Context, id types.ID, endedAt time.Time, days int, hours float64) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE trips
		SET status = 'completed', ended_at = $1, duration_days = $2, duration_hours = $3
		WHERE id = $4 AND status = 'active'`,
		endedAt, days, hours, string(id),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ExpireStale bulk-transitions requested → expired for trips created before
// the cutoff. Re-running is a no-op for trips already expired.
func (s *Store) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE trips
		SET status = 'expired'
		WHERE status = 'requested' AND created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// OpenTripCount counts open trips for one vehicle. Used by invariant checks.
func (s *Store) OpenTripCount(ctx context.Context, vehicleID types.ID) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM trips
		WHERE vehicle_id = $1 AND status IN ('requested', 'active')`,
		string(vehicleID),
	).Scan(&n)
	return n, err
}

const tripColumns = `
	SELECT id, account_id, vehicle_id, reason, status, created_at,
	       started_at, ended_at, duration_days, duration_hours`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*Trip, error) {
	var t Trip
	var startedAt, endedAt sql.NullTime
	var days sql.NullInt32
	var hours sql.NullFloat64
	err := row.Scan(
		&t.ID, &t.AccountID, &t.VehicleID, &t.Reason, &t.Status, &t.CreatedAt,
		&startedAt, &endedAt, &days, &hours,
	)
	if err != nil {
		return nil, err
	}
	if startedAt.Valid {
		v := startedAt.Time
		t.StartedAt = &v
	}
	if endedAt.Valid {
		v := endedAt.Time
		t.EndedAt = &v
	}
	if days.Valid {
		v := int(days.Int32)
		t.DurationDays = &v
	}
	if hours.Valid {
		v := hours.Float64
		t.DurationHours = &v
	}
	return &t, nil
}
