package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-records/internal/weather"
)

// stores returns a fresh instance of every ObservationStore implementation.
func stores(t *testing.T) map[string]weather.ObservationStore {
	t.Helper()

	sqlStore, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "weather.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlStore.Close() })

	return map[string]weather.ObservationStore{
		"sqlite": sqlStore,
		"memory": NewMemoryStore(),
	}
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var last int64
			for i := 0; i < 5; i++ {
				id, err := s.Insert(ctx, weather.ObservationInput{Location: weather.NewValue("Paris")})
				require.NoError(t, err)
				assert.Greater(t, id, last)
				last = id
			}

			// Deleting the newest row must not let its id be reused.
			n, err := s.Delete(ctx, last)
			require.NoError(t, err)
			require.EqualValues(t, 1, n)

			id, err := s.Insert(ctx, weather.ObservationInput{Location: weather.NewValue("Paris")})
			require.NoError(t, err)
			assert.Greater(t, id, last)
		})
	}
}

func TestListAfterInserts(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			rows, err := s.List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, rows)
			assert.Empty(t, rows)

			for i := 0; i < 4; i++ {
				_, err := s.Insert(ctx, weather.ObservationInput{Location: weather.NewValue("Lima"), Temperature: weather.NewValue(float64(i))})
				require.NoError(t, err)
			}

			rows, err = s.List(ctx)
			require.NoError(t, err)
			assert.Len(t, rows, 4)
		})
	}
}

func TestGetUpdateRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, 1)
			assert.True(t, errors.Is(err, ErrNotFound))

			in := weather.ObservationInput{
				Location:    weather.NewValue("Paris"),
				Temperature: weather.NewValue(15.0),
				Description: weather.NewValue("Cloudy"),
				Date:        weather.NewValue("2024-01-01"),
			}
			id, err := s.Insert(ctx, in)
			require.NoError(t, err)

			got, err := s.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, in.WithID(id), got)

			// Full replace: absent fields become NULL.
			update := weather.ObservationInput{Location: weather.NewValue("Paris"), Temperature: weather.NewValue(20.0)}
			n, err := s.Update(ctx, id, update)
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)

			got, err = s.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, update.WithID(id), got)
			assert.True(t, got.Description.IsNull())
			assert.True(t, got.Date.IsNull())
		})
	}
}

func TestUpdateAndDeleteMissingRow(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			n, err := s.Update(ctx, 99, weather.ObservationInput{Location: weather.NewValue("Nowhere")})
			require.NoError(t, err)
			assert.EqualValues(t, 0, n)

			n, err = s.Delete(ctx, 99)
			require.NoError(t, err)
			assert.EqualValues(t, 0, n)
		})
	}
}

func TestInsertRequiresLocation(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Insert(context.Background(), weather.ObservationInput{Temperature: weather.NewValue(1.0)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "NOT NULL constraint failed")
		})
	}
}

func TestUpdateRequiresLocation(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			in := weather.ObservationInput{Location: weather.NewValue("Paris"), Temperature: weather.NewValue(15.0)}
			id, err := s.Insert(ctx, in)
			require.NoError(t, err)

			// Full replace without a location nulls the NOT NULL column.
			_, err = s.Update(ctx, id, weather.ObservationInput{Temperature: weather.NewValue(20.0)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "NOT NULL constraint failed")

			got, err := s.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, in.WithID(id), got)
		})
	}
}

func TestColumnAffinity(t *testing.T) {
	tests := []struct {
		name string
		in   weather.ObservationInput
		want weather.Observation
	}{
		{
			name: "numbers in text columns",
			in: weather.ObservationInput{
				Location:    weather.NewValue(int64(123)),
				Description: weather.NewValue(1.5),
				Date:        weather.NewValue(int64(20240101)),
			},
			want: weather.Observation{
				Location:    weather.NewValue("123"),
				Description: weather.NewValue("1.5"),
				Date:        weather.NewValue("20240101"),
			},
		},
		{
			name: "text in real column",
			in:   weather.ObservationInput{Location: weather.NewValue("Paris"), Temperature: weather.NewValue("hot")},
			want: weather.Observation{Location: weather.NewValue("Paris"), Temperature: weather.NewValue("hot")},
		},
		{
			name: "numeric text in real column",
			in:   weather.ObservationInput{Location: weather.NewValue("Paris"), Temperature: weather.NewValue("21.5")},
			want: weather.Observation{Location: weather.NewValue("Paris"), Temperature: weather.NewValue(21.5)},
		},
		{
			name: "integer and bool",
			in: weather.ObservationInput{
				Location:    weather.NewValue("Paris"),
				Temperature: weather.NewValue(int64(20)),
				Description: weather.NewValue(true),
			},
			want: weather.Observation{
				Location:    weather.NewValue("Paris"),
				Temperature: weather.NewValue(20.0),
				Description: weather.NewValue("1"),
			},
		},
	}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, tt := range tests {
				id, err := s.Insert(ctx, tt.in)
				require.NoError(t, err, tt.name)

				got, err := s.Get(ctx, id)
				require.NoError(t, err, tt.name)

				want := tt.want
				want.ID = id
				assert.Equal(t, want, got, tt.name)
			}
		})
	}
}

func TestNewSelectsDriver(t *testing.T) {
	s, err := New(context.Background(), DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, s.Health(context.Background()))

	_, err = New(context.Background(), "oracle", "x")
	assert.Error(t, err)
}
