// README: Vehicle service implements fleet management and availability listing.
package vehicle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrNotFound       = errors.New("vehicle not found")
	ErrDuplicatePlate = errors.New("plate already registered")
)

// Uploader stores a photo and returns its public URL, or reports that the
// storage collaborator is unavailable.
type Uploader interface {
	Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error)
}

type Service struct {
	store    *Store
	uploader Uploader
}

func NewService(store *Store, uploader Uploader) *Service {
	return &Service{store: store, uploader: uploader}
}

type CreateCommand struct {
	Model string
	Plate string

	// Optional photo; nil Photo means none was sent.
	Photo            io.Reader
	PhotoContentType string
}

// Create registers a vehicle. A failed photo upload does not fail the
// creation; the vehicle is stored without a photo.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Vehicle, error) {
	if cmd.Model == "" || cmd.Plate == "" {
		return nil, ErrBadRequest
	}
	v := &Vehicle{
		ID:        types.NewID(),
		Model:     cmd.Model,
		Plate:     cmd.Plate,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if cmd.Photo != nil {
		name := fmt.Sprintf("vehicles/%s", v.ID)
		if url, err := s.uploader.Upload(ctx, name, cmd.PhotoContentType, cmd.Photo); err == nil {
			v.PhotoURL = &url
		}
	}
	if err := s.store.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Vehicle, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListAvailable(ctx context.Context) ([]Vehicle, error) {
	return s.store.ListAvailable(ctx)
}

func (s *Service) SetActive(ctx context.Context, id types.ID, active bool) error {
	return s.store.SetActive(ctx, id, active)
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}
