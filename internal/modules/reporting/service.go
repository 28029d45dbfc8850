// README: Reporting service; snapshot reads with times rendered in the report time zone.
package reporting

import (
	"context"
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type Service struct {
	store *Store
	loc   *time.Location
}

// NewService renders report timestamps in loc. Reads are eventually
// consistent snapshots; they are never linearized with booking writes.
func NewService(store *Store, loc *time.Location) *Service {
	return &Service{store: store, loc: loc}
}

func (s *Service) ListPending(ctx context.Context) ([]PendingTrip, error) {
	return s.store.ListPending(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]ActiveTrip, error) {
	trips, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		trips[i].StartedAt = trips[i].StartedAt.In(s.loc)
	}
	return trips, nil
}

func (s *Service) ListOwn(ctx context.Context, accountID types.ID) ([]OwnTrip, error) {
	return s.store.ListOwn(ctx, accountID)
}

func (s *Service) ListCompleted(ctx context.Context) ([]CompletedRow, error) {
	rows, err := s.store.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].StartedAt = rows[i].StartedAt.In(s.loc)
		rows[i].EndedAt = rows[i].EndedAt.In(s.loc)
	}
	return rows, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.store.Stats(ctx)
}
