package roster

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

// OnDuty is a shift entry covering the queried instant, with the staff member's name.
type OnDuty struct {
	domain.ShiftEntry
	StaffName string `json:"staffName"`
	StaffRole string `json:"staffRole"`
	IsIntern  bool   `json:"isIntern"`
}

// WhoIsWorkingAt returns the entries on date whose status is exactly "normal" and whose
// times enclose t, bounds included. Shifts crossing midnight never match.
func WhoIsWorkingAt(snapshot *DaySnapshot, date time.Time, t domain.TimeOfDay) []OnDuty {
	result := make([]OnDuty, 0)
	if snapshot == nil {
		return result
	}

	for _, entry := range snapshot.Entries {
		if !domain.SameDate(entry.WorkDate, date) {
			continue
		}
		if entry.Status != domain.StatusNormal {
			continue
		}
		if entry.StartTime == nil || entry.EndTime == nil {
			continue
		}
		if *entry.StartTime > t || t > *entry.EndTime {
			continue
		}

		staff := snapshot.Staff[entry.StaffID]
		result = append(result, OnDuty{
			ShiftEntry: entry,
			StaffName:  staff.FullName,
			StaffRole:  staff.Role,
			IsIntern:   staff.IsIntern,
		})
	}

	c := collate.New(language.German)
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].StaffName, result[j].StaffName) < 0
	})

	return result
}
