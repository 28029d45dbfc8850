// README: Booking service implements the trip lifecycle and its transition guards.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("trip not found")
	ErrConflict   = errors.New("vehicle already claimed")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type RequestCommand struct {
	AccountID types.ID
	VehicleID types.ID
	Reason    string
}

// Request claims a vehicle, creating a trip in requested status. The
// availability check and the insert share one consistency point in the
// store, so concurrent requests for the same vehicle yield exactly one
// requested trip.
func (s *Service) Request(ctx context.Context, cmd RequestCommand) (*Trip, error) {
	if cmd.AccountID == "" || cmd.VehicleID == "" || cmd.Reason == "" {
		return nil, ErrBadRequest
	}
	t := &Trip{
		ID:        types.NewID(),
		AccountID: cmd.AccountID,
		VehicleID: cmd.VehicleID,
		Reason:    cmd.Reason,
		Status:    StatusRequested,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateRequested(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Start transitions requested → active. A missing trip and a trip in the
// wrong state both surface as ErrNotFound; callers cannot probe trip state
// through this operation.
func (s *Service) Start(ctx context.Context, id types.ID) (*Trip, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(t.Status, StatusActive) {
		return nil, ErrNotFound
	}
	now := time.Now()
	ok, err := s.store.MarkActive(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// Stop transitions active → completed, stamping the end time and both
// duration fields in the same write. The same uniform ErrNotFound covers
// missing trips and wrong-state trips.
func (s *Service) Stop(ctx context.Context, id types.ID) (*Trip, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(t.Status, StatusCompleted) || t.StartedAt == nil {
		return nil, ErrNotFound
	}
	now := time.Now()
	days, hours := SplitDuration(now.Sub(*t.StartedAt))
	ok, err := s.store.MarkCompleted(ctx, id, now, days, hours)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// ExpirePending moves every requested trip older than olderThan to expired
// and returns the count transitioned. Idempotent.
func (s *Service) ExpirePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.store.ExpireStale(ctx, time.Now().Add(-olderThan))
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Trip, error) {
	return s.store.Get(ctx, id)
}
