package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"14:01", 841, false},
		{"23:59", 1439, false},
		{"08:00:00", 480, false},
		{"08:15:30", 495, false},
		{"08:00:00.000000", 480, false},
		{"24:00", 0, true},
		{"8", 0, true},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "08:05", domain.NewTimeOfDay(8, 5).String())
	assert.Equal(t, "00:00", domain.TimeOfDay(0).String())
	assert.Equal(t, "23:59:00", domain.NewTimeOfDay(23, 59).SQLValue())
}

func TestTimeOfDay_JSON(t *testing.T) {
	type payload struct {
		Start *domain.TimeOfDay `json:"start"`
		End   *domain.TimeOfDay `json:"end"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"07:30","end":null}`), &p))
	require.NotNil(t, p.Start)
	assert.Equal(t, domain.NewTimeOfDay(7, 30), *p.Start)
	assert.Nil(t, p.End)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"07:30","end":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"7h30"}`), &p))
}
