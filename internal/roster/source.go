package roster

import (
	"context"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

//go:generate mockgen -destination=mock_roster/mock_source.go -package=mock_roster . EntrySource

// EntrySource loads shift entries together with the staff and group records they reference.
type EntrySource interface {
	EntriesForWeek(ctx context.Context, weekNumber, year int) (*WeekSnapshot, error)
	EntriesForDate(ctx context.Context, date time.Time) (*DaySnapshot, error)
}

// WeekSnapshot holds all entries of one week plus lookup tables for the records they reference.
type WeekSnapshot struct {
	Week    domain.WeekPeriod
	Entries []domain.ShiftEntry
	Staff   map[int64]domain.Staff
	Groups  map[int64]domain.Group
}

// DaySnapshot holds all entries of one calendar date.
type DaySnapshot struct {
	Date    time.Time
	Entries []domain.ShiftEntry
	Staff   map[int64]domain.Staff
}

func (s *WeekSnapshot) StaffOf(entry domain.ShiftEntry) (domain.Staff, bool) {
	staff, ok := s.Staff[entry.StaffID]
	return staff, ok
}

// GroupName returns the name of the staff member's group, or "" when there is none.
func (s *WeekSnapshot) GroupName(staff domain.Staff) string {
	if staff.GroupID == nil {
		return ""
	}
	if group, ok := s.Groups[*staff.GroupID]; ok {
		return group.Name
	}
	return staff.GroupName
}
