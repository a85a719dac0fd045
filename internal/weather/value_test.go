package weather

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAcceptsAnyJSON(t *testing.T) {
	tests := []struct {
		body string
		want any
	}{
		{`null`, nil},
		{`"Paris"`, "Paris"},
		{`123`, int64(123)},
		{`21.5`, 21.5},
		{`1e2`, 100.0},
		{`true`, true},
		{`{"a": 1}`, `{"a":1}`},
		{`[1, 2]`, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.body), &v))
			assert.Equal(t, tt.want, v.Any())
		})
	}
}

func TestObservationInputKeepsMismatchedTypes(t *testing.T) {
	var in ObservationInput
	require.NoError(t, json.Unmarshal([]byte(`{"location":123,"temperature":"hot","date":20240101}`), &in))

	assert.Equal(t, int64(123), in.Location.Any())
	assert.Equal(t, "hot", in.Temperature.Any())
	assert.True(t, in.Description.IsNull())
	assert.Equal(t, int64(20240101), in.Date.Any())

	out, err := json.Marshal(in.WithID(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"location":123,"temperature":"hot","description":null,"date":20240101}`, string(out))
}

func TestUpdateEchoKeepsRawID(t *testing.T) {
	out, err := json.Marshal(UpdateEcho{ID: "abc", ObservationInput: ObservationInput{Location: NewValue("Oslo")}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","location":"Oslo","temperature":null,"description":null,"date":null}`, string(out))
}

func TestValueScan(t *testing.T) {
	var v Value
	require.NoError(t, v.Scan([]byte("Lima")))
	assert.Equal(t, "Lima", v.Any())

	require.NoError(t, v.Scan(nil))
	assert.True(t, v.IsNull())
}
