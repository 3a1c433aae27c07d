package roster

import (
	"sort"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

var dayNames = [domain.DaysPerWeek]string{
	"Montag",
	"Dienstag",
	"Mittwoch",
	"Donnerstag",
	"Freitag",
	"Samstag",
	"Sonntag",
}

// DayName returns the German weekday name for a day index, or "" outside 0..6.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek >= len(dayNames) {
		return ""
	}
	return dayNames[dayOfWeek]
}

type dayKey struct {
	dayOfWeek int
	workDate  time.Time
}

type dayAccumulator struct {
	total        domain.DailyTotal
	staff        map[int64]struct{}
	regularStaff map[int64]struct{}
}

// DailyTotals sums working minutes per calendar day, once over all staff and once
// leaving interns out. Days without entries produce no row.
func DailyTotals(snapshot *WeekSnapshot) []domain.DailyTotal {
	if snapshot == nil {
		return []domain.DailyTotal{}
	}

	days := make(map[dayKey]*dayAccumulator)
	for _, entry := range snapshot.Entries {
		key := dayKey{dayOfWeek: entry.DayOfWeek, workDate: domain.DateOf(entry.WorkDate)}
		acc, ok := days[key]
		if !ok {
			acc = &dayAccumulator{
				total: domain.DailyTotal{
					DayOfWeek: key.dayOfWeek,
					WorkDate:  key.workDate,
					DayName:   DayName(key.dayOfWeek),
				},
				staff:        make(map[int64]struct{}),
				regularStaff: make(map[int64]struct{}),
			}
			days[key] = acc
		}

		staff, _ := snapshot.StaffOf(entry)
		acc.total.TotalMinutesWithInterns += entry.WorkingMinutes
		acc.staff[entry.StaffID] = struct{}{}
		if !staff.IsIntern {
			acc.total.TotalMinutesWithoutInterns += entry.WorkingMinutes
			acc.regularStaff[entry.StaffID] = struct{}{}
		}
	}

	totals := make([]domain.DailyTotal, 0, len(days))
	for _, acc := range days {
		t := acc.total
		t.TotalStaffCount = len(acc.staff)
		t.StaffCountWithoutInterns = len(acc.regularStaff)
		t.HoursWithInterns = FormatMinutes(t.TotalMinutesWithInterns)
		t.HoursWithoutInterns = FormatMinutes(t.TotalMinutesWithoutInterns)
		totals = append(totals, t)
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].DayOfWeek != totals[j].DayOfWeek {
			return totals[i].DayOfWeek < totals[j].DayOfWeek
		}
		return totals[i].WorkDate.Before(totals[j].WorkDate)
	})

	return totals
}
