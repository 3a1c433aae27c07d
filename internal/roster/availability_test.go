package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

func daySnapshot(entries ...domain.ShiftEntry) *roster.DaySnapshot {
	week := weekSnapshot()
	return &roster.DaySnapshot{
		Date:    date(2025, time.January, 6),
		Entries: entries,
		Staff:   week.Staff,
	}
}

func onDutyNames(list []roster.OnDuty) []string {
	names := make([]string, 0, len(list))
	for _, d := range list {
		names = append(names, d.StaffName)
	}
	return names
}

func TestWhoIsWorkingAt(t *testing.T) {
	monday := date(2025, time.January, 6)
	snapshot := daySnapshot(
		entry(t, 2, 0, domain.StatusNormal, "07:00", "15:00"),
		entry(t, 1, 0, domain.StatusNormal, "10:00", "18:00"),
		entry(t, 3, 0, domain.StatusSick, "", ""),
		entry(t, 4, 0, domain.StatusNormal, "12:00", "16:00"),
	)

	tests := []struct {
		name string
		at   string
		want []string
	}{
		{"before everyone", "06:59", []string{}},
		{"start bound is inclusive", "07:00", []string{"Özlem Yılmaz"}},
		{"overlap ordered by name", "12:30", []string{"Anna Becker", "Lena Springer", "Özlem Yılmaz"}},
		{"end bound is inclusive", "15:00", []string{"Anna Becker", "Lena Springer", "Özlem Yılmaz"}},
		{"after end", "18:01", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roster.WhoIsWorkingAt(snapshot, monday, *tod(t, tt.at))
			assert.Equal(t, tt.want, onDutyNames(got))
		})
	}
}

func TestWhoIsWorkingAt_StatusIsExact(t *testing.T) {
	snapshot := daySnapshot(entry(t, 1, 0, domain.Status("NORMAL"), "08:00", "16:00"))

	got := roster.WhoIsWorkingAt(snapshot, date(2025, time.January, 6), *tod(t, "09:00"))

	assert.Empty(t, got)
	assert.Equal(t, 450, snapshot.Entries[0].WorkingMinutes)
}

func TestWhoIsWorkingAt_OvernightShiftIsInvisible(t *testing.T) {
	snapshot := daySnapshot(entry(t, 1, 0, domain.StatusNormal, "22:00", "06:00"))
	monday := date(2025, time.January, 6)

	for _, at := range []string{"21:59", "22:00", "23:30", "00:00", "05:00", "06:00"} {
		assert.Empty(t, roster.WhoIsWorkingAt(snapshot, monday, *tod(t, at)), at)
	}
}

func TestWhoIsWorkingAt_OtherDateIgnored(t *testing.T) {
	snapshot := daySnapshot(entry(t, 1, 1, domain.StatusNormal, "08:00", "16:00"))

	assert.Empty(t, roster.WhoIsWorkingAt(snapshot, date(2025, time.January, 6), *tod(t, "09:00")))
	assert.Len(t, roster.WhoIsWorkingAt(snapshot, date(2025, time.January, 7), *tod(t, "09:00")), 1)
	assert.Empty(t, roster.WhoIsWorkingAt(nil, date(2025, time.January, 7), *tod(t, "09:00")))
}
