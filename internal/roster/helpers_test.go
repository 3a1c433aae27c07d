package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

func tod(t *testing.T, s string) *domain.TimeOfDay {
	t.Helper()
	v, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func int64Ptr(v int64) *int64 {
	return &v
}

// entry builds a recalculated entry for the week starting on Monday 2025-01-06.
func entry(t *testing.T, staffID int64, day int, status domain.Status, start, end string) domain.ShiftEntry {
	t.Helper()
	e := domain.ShiftEntry{
		WeeklyScheduleID: 1,
		StaffID:          staffID,
		DayOfWeek:        day,
		WorkDate:         date(2025, time.January, 6).AddDate(0, 0, day),
		Status:           status,
	}
	if start != "" {
		e.StartTime = tod(t, start)
	}
	if end != "" {
		e.EndTime = tod(t, end)
	}
	roster.Recalculate(&e)
	return e
}
