package store

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/i474232898/weather-records/internal/weather"
)

var (
	// ErrNotFound is returned when no observation has the requested id.
	ErrNotFound = errors.New("Not found")

	// ErrNullLocation mirrors the NOT NULL constraint on weather.location.
	ErrNullLocation = errors.New("NOT NULL constraint failed: weather.location")
)

// MemoryStore is a concurrency-safe in-memory implementation of weather.ObservationStore.
// Ids start at 1 and are never reused, like an AUTOINCREMENT column.
type MemoryStore struct {
	mu sync.RWMutex

	// key: observation id
	data   map[int64]weather.Observation
	lastID int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[int64]weather.Observation),
	}
}

// Insert stores a new observation under the next id.
func (s *MemoryStore) Insert(_ context.Context, in weather.ObservationInput) (int64, error) {
	if in.Location.IsNull() {
		return 0, ErrNullLocation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	s.data[s.lastID] = stored(s.lastID, in)
	return s.lastID, nil
}

// List returns every observation ordered by id.
func (s *MemoryStore) List(_ context.Context) ([]weather.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]weather.Observation, 0, len(s.data))
	for _, obs := range s.data {
		result = append(result, obs)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Get returns the observation with the given id.
func (s *MemoryStore) Get(_ context.Context, id int64) (weather.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obs, ok := s.data[id]
	if !ok {
		return weather.Observation{}, ErrNotFound
	}
	return obs, nil
}

// Update replaces the mutable fields of id, if present.
func (s *MemoryStore) Update(_ context.Context, id int64, in weather.ObservationInput) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return 0, nil
	}
	if in.Location.IsNull() {
		return 0, ErrNullLocation
	}
	s.data[id] = stored(id, in)
	return 1, nil
}

// Delete removes id, if present.
func (s *MemoryStore) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return 0, nil
	}
	delete(s.data, id)
	return 1, nil
}

func (s *MemoryStore) Health(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// stored applies the column affinities of the weather table, so rows read
// back from memory hold the same values SQLite would return.
func stored(id int64, in weather.ObservationInput) weather.Observation {
	return weather.Observation{
		ID:          id,
		Location:    textAffinity(in.Location),
		Temperature: realAffinity(in.Temperature),
		Description: textAffinity(in.Description),
		Date:        textAffinity(in.Date),
	}
}

func textAffinity(v weather.Value) weather.Value {
	switch t := v.Any().(type) {
	case int64:
		return weather.NewValue(strconv.FormatInt(t, 10))
	case float64:
		return weather.NewValue(formatReal(t))
	case bool:
		if t {
			return weather.NewValue("1")
		}
		return weather.NewValue("0")
	}
	return v
}

func realAffinity(v weather.Value) weather.Value {
	switch t := v.Any().(type) {
	case int64:
		return weather.NewValue(float64(t))
	case bool:
		if t {
			return weather.NewValue(1.0)
		}
		return weather.NewValue(0.0)
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.ContainsAny(s, "xXnNiI_") {
			return v
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return weather.NewValue(f)
		}
	}
	return v
}

// formatReal renders a float the way SQLite casts REAL to TEXT: integral
// values keep a trailing ".0".
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', 15, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
