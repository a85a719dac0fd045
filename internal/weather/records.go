package weather

import (
	"context"

	"github.com/rs/zerolog/log"
)

// RecordService exposes the observation store to the API layer.
type RecordService struct {
	store ObservationStore
}

// NewRecordService creates a new RecordService.
func NewRecordService(store ObservationStore) *RecordService {
	return &RecordService{store: store}
}

// Create inserts a new observation and returns it with its assigned id.
func (s *RecordService) Create(ctx context.Context, in ObservationInput) (Observation, error) {
	id, err := s.store.Insert(ctx, in)
	if err != nil {
		return Observation{}, err
	}
	return in.WithID(id), nil
}

// List delegates to the underlying store.
func (s *RecordService) List(ctx context.Context) ([]Observation, error) {
	return s.store.List(ctx)
}

// Get delegates to the underlying store.
func (s *RecordService) Get(ctx context.Context, id int64) (Observation, error) {
	return s.store.Get(ctx, id)
}

// Update overwrites all four mutable fields of id. An id that matches no
// row is not an error.
func (s *RecordService) Update(ctx context.Context, id int64, in ObservationInput) error {
	n, err := s.store.Update(ctx, id, in)
	if err != nil {
		return err
	}
	log.Debug().Int64("id", id).Int64("affected", n).Msg("observation updated")
	return nil
}

// Delete removes id and returns the number of rows removed (0 or 1).
func (s *RecordService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.store.Delete(ctx, id)
}

// Health reports whether the store is reachable.
func (s *RecordService) Health(ctx context.Context) error {
	return s.store.Health(ctx)
}
