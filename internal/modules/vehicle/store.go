// README: Vehicle store backed by PostgreSQL, including the availability query.
package vehicle

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, v *Vehicle) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vehicles (id, model, plate, photo_url, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(v.ID), v.Model, v.Plate, v.PhotoURL, v.Active, v.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicatePlate
	}
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Vehicle, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, model, plate, photo_url, active, created_at
		FROM vehicles WHERE id = $1`, string(id),
	)
	v, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListAvailable returns active vehicles with no open trip. Computed fresh on
// every call against current trip state; availability is never cached.
func (s *Store) ListAvailable(ctx context.Context) ([]Vehicle, error) {
	rows, err := s.db.Query(ctx, `
		SELECT v.id, v.model, v.plate, v.photo_url, v.active, v.created_at
		FROM vehicles v
		WHERE v.active
		  AND NOT EXISTS (
			SELECT 1 FROM trips t
			WHERE t.vehicle_id = v.id AND t.status IN ('requested', 'active')
		  )
		ORDER BY v.model, v.plate`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (s *Store) SetActive(ctx context.Context, id types.ID, active bool) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE vehicles SET active = $1 WHERE id = $2`, active, string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the vehicle; trip history goes with it via ON DELETE CASCADE.
func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*Vehicle, error) {
	var v Vehicle
	var photo sql.NullString
	if err := row.Scan(&v.ID, &v.Model, &v.Plate, &photo, &v.Active, &v.CreatedAt); err != nil {
		return nil, err
	}
	if photo.Valid {
		v.PhotoURL = &photo.String
	}
	return &v, nil
}
