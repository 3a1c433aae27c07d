package roster

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

// WeeklyStaffTotals sums minutes per staff member and counts the days spent in each
// outcome category. Category counts compare the stored label exactly.
func WeeklyStaffTotals(snapshot *WeekSnapshot) []domain.WeeklyStaffTotal {
	if snapshot == nil {
		return []domain.WeeklyStaffTotal{}
	}

	byStaff := make(map[int64]*domain.WeeklyStaffTotal)
	order := make([]int64, 0)
	for _, entry := range snapshot.Entries {
		total, ok := byStaff[entry.StaffID]
		if !ok {
			staff, _ := snapshot.StaffOf(entry)
			total = &domain.WeeklyStaffTotal{
				StaffID:   entry.StaffID,
				FullName:  staff.FullName,
				Role:      staff.Role,
				GroupName: snapshot.GroupName(staff),
			}
			byStaff[entry.StaffID] = total
			order = append(order, entry.StaffID)
		}

		total.TotalWorkingMinutes += entry.WorkingMinutes
		total.TotalBreakMinutes += entry.BreakMinutes

		switch entry.Status {
		case domain.StatusNormal:
			total.DaysWorked++
		case domain.StatusSick:
			total.DaysSick++
		case domain.StatusOff:
			total.DaysOff++
		case domain.StatusSchool, domain.StatusVocationalSchool:
			total.SchoolDays++
		}
	}

	totals := make([]domain.WeeklyStaffTotal, 0, len(order))
	for _, id := range order {
		t := byStaff[id]
		t.TotalHoursFormatted = FormatMinutes(t.TotalWorkingMinutes)
		t.TotalBreakFormatted = FormatMinutes(t.TotalBreakMinutes)
		totals = append(totals, *t)
	}

	SortWeeklyStaffTotals(totals)
	return totals
}

// SortWeeklyStaffTotals orders totals by group name, then full name, using German collation.
func SortWeeklyStaffTotals(totals []domain.WeeklyStaffTotal) {
	c := collate.New(language.German)
	sort.SliceStable(totals, func(i, j int) bool {
		if cmp := c.CompareString(totals[i].GroupName, totals[j].GroupName); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(totals[i].FullName, totals[j].FullName) < 0
	})
}
