// README: Account store backed by PostgreSQL.
package account

import (
	"context"
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

func (s *Store) Create(ctx context.Context, a *Account) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO accounts (id, registration, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(a.ID), a.Registration, a.PasswordHash, a.IsAdmin, a.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicateRegistration
	}
	return err
}

func (s *Store) GetByID(ctx context.Context, id types.ID) (*Account, error) {
	return s.get(ctx, `
		SELECT id, registration, password_hash, is_admin, created_at
		FROM accounts WHERE id = $1`, string(id))
}

func (s *Store) GetByRegistration(ctx context.Context, registration string) (*Account, error) {
	return s.get(ctx, `
		SELECT id, registration, password_hash, is_admin, created_at
		FROM accounts WHERE registration = $1`, registration)
}

func (s *Store) get(ctx context.Context, query string, arg string) (*Account, error) {
	var a Account
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Registration, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) UpdatePasswordHash(ctx context.Context, id types.ID, hash string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE accounts SET password_hash = $1 WHERE id = $2`,
		hash, string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
