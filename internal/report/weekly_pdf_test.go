package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/report"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

func TestCellText(t *testing.T) {
	start, end := domain.NewTimeOfDay(8, 0), domain.NewTimeOfDay(16, 30)

	assert.Equal(t, "", report.CellText(nil))
	assert.Equal(t, "08:00-16:30", report.CellText(&domain.ShiftEntry{Status: domain.StatusNormal, StartTime: &start, EndTime: &end}))
	assert.Equal(t, "normal", report.CellText(&domain.ShiftEntry{Status: domain.StatusNormal}))
	assert.Equal(t, "krank", report.CellText(&domain.ShiftEntry{Status: domain.StatusSick}))
	assert.Equal(t, "Fachschule", report.CellText(&domain.ShiftEntry{Status: domain.StatusVocationalSchool}))
}

func TestFooterLines(t *testing.T) {
	daily := []domain.DailyTotal{
		{DayOfWeek: 0, TotalMinutesWithInterns: 720, TotalMinutesWithoutInterns: 480, TotalStaffCount: 2, StaffCountWithoutInterns: 1},
		{DayOfWeek: 2, TotalMinutesWithInterns: 450, TotalMinutesWithoutInterns: 450, TotalStaffCount: 1, StaffCountWithoutInterns: 1},
	}

	lines := report.FooterLines(daily)
	require.Len(t, lines, 3)

	assert.Equal(t, "Stunden gesamt", lines[0].Label)
	assert.Equal(t, "12:00", lines[0].Cells[0])
	assert.Equal(t, "0:00", lines[0].Cells[1])
	assert.Equal(t, "7:30", lines[0].Cells[2])
	assert.Equal(t, "0:00", lines[0].Cells[6])

	assert.Equal(t, "8:00", lines[1].Cells[0])
	assert.Equal(t, "0:00", lines[1].Cells[1])

	assert.Equal(t, "2 (1)", lines[2].Cells[0])
	assert.Equal(t, "0 (0)", lines[2].Cells[1])
}

func TestWeeklyRoster(t *testing.T) {
	week := domain.NewWeekPeriod(2025, 2)
	week.Notes = "Teamsitzung am Mittwoch, Küche geschlossen"
	groupID := int64(1)
	start, end := domain.NewTimeOfDay(7, 0), domain.NewTimeOfDay(15, 0)

	entries := []domain.ShiftEntry{
		{StaffID: 1, DayOfWeek: 0, WorkDate: week.DayDate(0), Status: domain.StatusNormal, StartTime: &start, EndTime: &end},
		{StaffID: 1, DayOfWeek: 1, WorkDate: week.DayDate(1), Status: domain.StatusSick},
		{StaffID: 2, DayOfWeek: 0, WorkDate: week.DayDate(0), Status: domain.StatusSchool},
	}
	for i := range entries {
		roster.Recalculate(&entries[i])
	}

	snapshot := &roster.WeekSnapshot{
		Week:    week,
		Entries: entries,
		Staff: map[int64]domain.Staff{
			1: {ID: 1, FullName: "Jürgen Schäfer", Role: "Erzieher", GroupID: &groupID},
			2: {ID: 2, FullName: "Ayşe Kaya", Role: "Praktikantin", IsIntern: true},
		},
		Groups: map[int64]domain.Group{1: {ID: 1, Name: "Mäuse"}},
	}

	var buf bytes.Buffer
	err := report.WeeklyRoster(&buf, snapshot, roster.DailyTotals(snapshot), roster.WeeklyStaffTotals(snapshot))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWeeklyRoster_EmptyWeek(t *testing.T) {
	snapshot := &roster.WeekSnapshot{Week: domain.NewWeekPeriod(2025, 3)}

	var buf bytes.Buffer
	require.NoError(t, report.WeeklyRoster(&buf, snapshot, nil, nil))
	assert.NotZero(t, buf.Len())
}
