package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2026-12-31T18:30:00-03:00"`, time.Date(2026, 12, 31, 21, 30, 0, 0, time.UTC)},
		{"zone-less", `"2026-12-31T18:30:00"`, time.Date(2026, 12, 31, 18, 30, 0, 0, time.UTC)},
		{"datetime-local", `"2026-12-31T18:30"`, time.Date(2026, 12, 31, 18, 30, 0, 0, time.UTC)},
		{"date only", `"2026-12-31"`, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dt DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &dt))
			assert.True(t, tt.want.Equal(dt.Time), "got %s", dt.Time)
		})
	}
}

func TestDateTime_NullAndInvalid(t *testing.T) {
	var payload struct {
		Target *DateTime `json:"target"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"target":null}`), &payload))
	assert.Nil(t, ToTimePtr(payload.Target))

	var dt DateTime
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &dt))
}

func TestDateTime_MarshalJSON(t *testing.T) {
	dt := DateTime{Time: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-06-01T09:00:00Z"`, string(b))

	b, err = json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
