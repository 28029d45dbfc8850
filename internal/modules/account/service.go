// README: Account service implements registration, authentication, and password reset.
package account

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

var (
	ErrBadRequest            = errors.New("bad request")
	ErrNotFound              = errors.New("account not found")
	ErrDuplicateRegistration = errors.New("registration already taken")
	ErrBadCredentials        = errors.New("bad credentials")
)

// Sessions revokes outstanding bearer tokens for an account; a password
// reset must not leave old tokens honoured.
type Sessions interface {
	RevokeAll(ctx context.Context, accountID types.ID) error
}

type Service struct {
	store           *Store
	sessions        Sessions
	defaultPassword string
}

func NewService(store *Store, sessions Sessions, defaultPassword string) *Service {
	return &Service{store: store, sessions: sessions, defaultPassword: defaultPassword}
}

type RegisterCommand struct {
	Registration string
	Password     string
	IsAdmin      bool
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*Account, error) {
	if cmd.Registration == "" || cmd.Password == "" {
		return nil, ErrBadRequest
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := &Account{
		ID:           types.NewID(),
		Registration: cmd.Registration,
		PasswordHash: string(hash),
		IsAdmin:      cmd.IsAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Authenticate(ctx context.Context, registration, password string) (*Account, error) {
	if registration == "" || password == "" {
		return nil, ErrBadRequest
	}
	a, err := s.store.GetByRegistration(ctx, registration)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return a, nil
}

// ResetPassword restores the configured default password and revokes the
// account's live sessions.
func (s *Service) ResetPassword(ctx context.Context, id types.ID) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
		return err
	}
	return s.sessions.RevokeAll(ctx, id)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Account, error) {
	return s.store.GetByID(ctx, id)
}
