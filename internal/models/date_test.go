package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"calendar date", `"2026-10-01"`, NewDate(2026, time.October, 1)},
		{"timestamp", `"2026-10-01T18:30:00+05:30"`, NewDate(2026, time.October, 1)},
		{"null", `null`, Date{}},
		{"empty", `""`, Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %s", d)
		})
	}

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01/10/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20261001`), &d))
}

func TestDateInPayment(t *testing.T) {
	var payment Payment
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"dueDate":"2026-10-01"}`), &payment))
	require.NotNil(t, payment.DueDate)
	assert.Equal(t, "2026-10-01", payment.DueDate.String())

	raw, err := json.Marshal(payment)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dueDate":"2026-10-01"`)
}

func TestDateUnmarshalParam(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalParam("2026-02-28"))
	assert.Equal(t, "2026-02-28", d.String())
	assert.Error(t, d.UnmarshalParam("2026-02-30"))
}
