package domain

import "time"

const DaysPerWeek = 7

// WeekPeriod is a Monday to Sunday span identified by ISO week number and year.
type WeekPeriod struct {
	ID         int64     `json:"id"`
	WeekNumber int       `json:"weekNumber"`
	Year       int       `json:"year"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Notes      string    `json:"notes"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedBy  string    `json:"updatedBy"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Version    int32     `json:"-"`
}

// NewWeekPeriod derives start and end dates of the given ISO week.
func NewWeekPeriod(year, weekNumber int) WeekPeriod {
	start := ISOWeekStart(year, weekNumber)
	return WeekPeriod{
		WeekNumber: weekNumber,
		Year:       year,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, DaysPerWeek-1),
	}
}

// ISOWeekStart returns the Monday of the ISO week. January 4th always lies in week 1.
func ISOWeekStart(year, weekNumber int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	week1 := jan4.AddDate(0, 0, -offset)
	return week1.AddDate(0, 0, (weekNumber-1)*DaysPerWeek)
}

// DayDate returns the calendar date of the given day index (0=Monday).
func (w WeekPeriod) DayDate(dayOfWeek int) time.Time {
	return w.StartDate.AddDate(0, 0, dayOfWeek)
}

// DayIndex returns the day index of date within the week and whether it falls inside it.
func (w WeekPeriod) DayIndex(date time.Time) (int, bool) {
	d := DateOf(date)
	start := DateOf(w.StartDate)
	days := int(d.Sub(start).Hours() / 24)
	if d.Before(start) || days >= DaysPerWeek {
		return 0, false
	}
	return days, true
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate compares two instants by calendar date only.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
