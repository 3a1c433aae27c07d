package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{
		0:    "0:00",
		5:    "0:05",
		59:   "0:59",
		60:   "1:00",
		450:  "7:30",
		601:  "10:01",
		2400: "40:00",
	}
	for minutes, want := range tests {
		assert.Equal(t, want, roster.FormatMinutes(minutes), "minutes=%d", minutes)
	}
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "0:00", roster.FormatOptional(nil))

	v := 450
	assert.Equal(t, "7:30", roster.FormatOptional(&v))
}
