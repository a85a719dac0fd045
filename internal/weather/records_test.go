package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore is a minimal ObservationStore that remembers the last write.
type recordingStore struct {
	ObservationStore
	nextID   int64
	affected int64
	lastIn   ObservationInput
}

func (s *recordingStore) Insert(_ context.Context, in ObservationInput) (int64, error) {
	s.nextID++
	s.lastIn = in
	return s.nextID, nil
}

func (s *recordingStore) Update(_ context.Context, _ int64, in ObservationInput) (int64, error) {
	s.lastIn = in
	return s.affected, nil
}

func TestRecordServiceCreateEchoesInput(t *testing.T) {
	svc := NewRecordService(&recordingStore{})

	obs, err := svc.Create(context.Background(), ObservationInput{Location: NewValue(123)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, obs.ID)
	assert.Equal(t, int64(123), obs.Location.Any())
	assert.True(t, obs.Temperature.IsNull())
}

func TestRecordServiceUpdateIgnoresAffectedRows(t *testing.T) {
	st := &recordingStore{affected: 0}
	svc := NewRecordService(st)

	err := svc.Update(context.Background(), 5, ObservationInput{Location: NewValue("Paris"), Temperature: NewValue(20.0)})
	require.NoError(t, err)
	assert.Equal(t, "Paris", st.lastIn.Location.Any())
	assert.Equal(t, 20.0, st.lastIn.Temperature.Any())
}
