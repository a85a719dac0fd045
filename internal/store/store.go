package store

import (
	"context"

	"github.com/i474232898/weather-records/internal/weather"
)

// DriverMemory selects the in-process MemoryStore.
const DriverMemory = "memory"

// New opens the observation store for driver. The memory driver ignores dsn.
func New(ctx context.Context, driver, dsn string) (weather.ObservationStore, error) {
	if driver == DriverMemory {
		return NewMemoryStore(), nil
	}
	return Open(ctx, driver, dsn)
}
