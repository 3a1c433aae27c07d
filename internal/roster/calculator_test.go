package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

func TestComputeShift(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.Status
		start, end  string
		wantWorking int
		wantBreak   int
	}{
		{"full day", domain.StatusNormal, "08:00", "16:00", 450, 30},
		{"short shift", domain.StatusNormal, "08:00", "13:00", 300, 0},
		{"exactly six hours", domain.StatusNormal, "08:00", "14:00", 360, 0},
		{"six hours and one minute", domain.StatusNormal, "08:00", "14:01", 331, 30},
		{"overnight", domain.StatusNormal, "22:00", "06:00", 450, 30},
		{"sick", domain.StatusSick, "08:00", "16:00", 0, 0},
		{"upper case normal", domain.Status("NORMAL"), "08:00", "16:00", 450, 30},
		{"mixed case normal", domain.Status("Normal"), "08:00", "12:00", 240, 0},
		{"unknown status", domain.Status("Elternzeit"), "08:00", "16:00", 0, 0},
		{"missing start", domain.StatusNormal, "", "16:00", 0, 0},
		{"missing end", domain.StatusNormal, "08:00", "", 0, 0},
		{"same start and end", domain.StatusNormal, "08:00", "08:00", 0, 0},
		{"seconds are ignored", domain.StatusNormal, "07:30:00", "15:45:59", 465, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var start, end *domain.TimeOfDay
			if tt.start != "" {
				start = tod(t, tt.start)
			}
			if tt.end != "" {
				end = tod(t, tt.end)
			}

			got := roster.ComputeShift(tt.status, start, end)

			assert.Equal(t, tt.wantWorking, got.Working)
			assert.Equal(t, tt.wantBreak, got.Break)
		})
	}
}

func TestComputeShift_WorkingPlusBreakEqualsSpan(t *testing.T) {
	for start := 0; start < domain.MinutesPerDay; start += 37 {
		for end := 0; end < domain.MinutesPerDay; end += 41 {
			s, e := domain.TimeOfDay(start), domain.TimeOfDay(end)
			span := end - start
			if span < 0 {
				span += domain.MinutesPerDay
			}

			got := roster.ComputeShift(domain.StatusNormal, &s, &e)

			assert.Equal(t, span, got.Working+got.Break)
			if float64(span)/60 > 6 {
				assert.Equal(t, 30, got.Break)
			} else {
				assert.Equal(t, 0, got.Break)
			}
		}
	}
}

func TestComputeShift_NonWorkingStatusesYieldZero(t *testing.T) {
	start, end := tod(t, "06:00"), tod(t, "18:00")
	for _, status := range domain.KnownStatuses() {
		if status == domain.StatusNormal {
			continue
		}
		assert.Equal(t, roster.Minutes{}, roster.ComputeShift(status, start, end), status)
	}
}

func TestRecalculate(t *testing.T) {
	e := domain.ShiftEntry{
		Status:         domain.StatusNormal,
		StartTime:      tod(t, "08:00"),
		EndTime:        tod(t, "16:00"),
		WorkingMinutes: 999,
		BreakMinutes:   999,
	}

	roster.Recalculate(&e)
	assert.Equal(t, 450, e.WorkingMinutes)
	assert.Equal(t, 30, e.BreakMinutes)

	roster.Recalculate(&e)
	assert.Equal(t, 450, e.WorkingMinutes)
	assert.Equal(t, 30, e.BreakMinutes)

	e.Status = domain.StatusSick
	roster.Recalculate(&e)
	assert.Equal(t, 0, e.WorkingMinutes)
	assert.Equal(t, 0, e.BreakMinutes)
}
