package roster

import "github.com/zuacaldeira/kita-dienstplan/internal/domain"

const (
	// BreakMinutes is the unpaid break deducted from long shifts.
	BreakMinutes = 30
	// BreakThresholdHours is the shift length that must be exceeded before a break applies.
	BreakThresholdHours = 6.0
)

// Minutes is the derived result of a shift: paid working time and deducted break.
type Minutes struct {
	Working int
	Break   int
}

// ComputeShift derives working and break minutes from a status and its optional times.
// Only the working status with both times present yields non-zero minutes. An end time
// before the start time is read as a shift crossing midnight.
func ComputeShift(status domain.Status, start, end *domain.TimeOfDay) Minutes {
	if !status.IsWorking() || start == nil || end == nil {
		return Minutes{}
	}

	span := int(*end) - int(*start)
	if span < 0 {
		span += domain.MinutesPerDay
	}

	breakMinutes := 0
	if float64(span)/60.0 > BreakThresholdHours {
		breakMinutes = BreakMinutes
	}

	return Minutes{
		Working: span - breakMinutes,
		Break:   breakMinutes,
	}
}

// Recalculate overwrites the derived minute fields of entry from its status and times.
func Recalculate(entry *domain.ShiftEntry) {
	m := ComputeShift(entry.Status, entry.StartTime, entry.EndTime)
	entry.WorkingMinutes = m.Working
	entry.BreakMinutes = m.Break
}
