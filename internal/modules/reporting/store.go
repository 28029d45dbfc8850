// README: Read-only reporting queries over PostgreSQL (joined listings, counts).
package reporting

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListPending returns requested trips oldest first (fairness ordering).
func (s *Store) ListPending(ctx context.Context) ([]PendingTrip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT t.id, t.reason, t.created_at, v.model, v.plate, a.registration
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN accounts a ON a.id = t.account_id
		WHERE t.status = 'requested'
		ORDER BY t.created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	var out []PendingTrip
	for rows.Next() {
		var p PendingTrip
		if err := rows.Scan(&p.TripID, &p.Reason, &p.CreatedAt, &p.VehicleModel, &p.VehiclePlate, &p.Registration); err != nil {
			return nil, err
		}
		p.Age = now.Sub(p.CreatedAt)
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListActive returns in-use trips ordered by start time ascending.
func (s *Store) ListActive(ctx context.Context) ([]ActiveTrip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT t.id, t.reason, t.started_at, v.model, v.plate, a.registration
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN accounts a ON a.id = t.account_id
		WHERE t.status = 'active'
		ORDER BY t.started_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ActiveTrip
	for rows.Next() {
		var a ActiveTrip
		if err := rows.Scan(&a.TripID, &a.Reason, &a.StartedAt, &a.VehicleModel, &a.VehiclePlate, &a.Registration); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListOwn returns every trip belonging to one account, newest first.
func (s *Store) ListOwn(ctx context.Context, accountID types.ID) ([]OwnTrip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT t.id, t.status, t.reason, t.created_at, t.started_at, t.ended_at, v.model, v.plate
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		WHERE t.account_id = $1
		ORDER BY t.created_at DESC`,
		string(accountID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	var out []OwnTrip
	for rows.Next() {
		var o OwnTrip
		var startedAt, endedAt sql.NullTime
		if err := rows.Scan(&o.TripID, &o.Status, &o.Reason, &o.CreatedAt, &startedAt, &endedAt, &o.VehicleModel, &o.VehiclePlate); err != nil {
			return nil, err
		}
		if startedAt.Valid {
			v := startedAt.Time
			o.StartedAt = &v
		}
		if endedAt.Valid {
			v := endedAt.Time
			o.EndedAt = &v
		}
		o.Elapsed = now.Sub(o.CreatedAt)
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListCompleted returns finalized trips for the export view, oldest first.
func (s *Store) ListCompleted(ctx context.Context) ([]CompletedRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT a.registration, v.model, v.plate, t.reason,
		       t.started_at, t.ended_at, t.duration_days, t.duration_hours
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN accounts a ON a.id = t.account_id
		WHERE t.status = 'completed'
		ORDER BY t.ended_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CompletedRow
	for rows.Next() {
		var r CompletedRow
		if err := rows.Scan(&r.Registration, &r.VehicleModel, &r.VehiclePlate, &r.Reason,
			&r.StartedAt, &r.EndedAt, &r.DurationDays, &r.DurationHours); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM vehicles),
			(SELECT COUNT(*) FROM vehicles WHERE active),
			(SELECT COUNT(*) FROM vehicles v
			 WHERE v.active AND NOT EXISTS (
				SELECT 1 FROM trips t
				WHERE t.vehicle_id = v.id AND t.status IN ('requested', 'active'))),
			(SELECT COUNT(*) FROM accounts),
			(SELECT COUNT(*) FROM trips WHERE status = 'requested'),
			(SELECT COUNT(*) FROM trips WHERE status = 'active'),
			(SELECT COUNT(*) FROM trips WHERE status = 'completed'),
			(SELECT COUNT(*) FROM trips WHERE status = 'expired')`,
	).Scan(
		&st.VehiclesTotal, &st.VehiclesActive, &st.VehiclesAvailable, &st.AccountsTotal,
		&st.TripsRequested, &st.TripsActive, &st.TripsCompleted, &st.TripsExpired,
	)
	return st, err
}
