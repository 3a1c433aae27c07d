package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

func ValidateWeekPeriod(week *domain.WeekPeriod) error {
	if week.WeekNumber < 1 || week.WeekNumber > 53 {
		return fmt.Errorf("Kalenderwoche %d ist ungültig", week.WeekNumber)
	}

	if week.StartDate.Weekday() != time.Monday {
		return errors.New("Der Wochenbeginn muss ein Montag sein")
	}

	if !domain.SameDate(week.EndDate, week.StartDate.AddDate(0, 0, domain.DaysPerWeek-1)) {
		return errors.New("Das Wochenende muss sechs Tage nach dem Wochenbeginn liegen")
	}

	return nil
}

// ValidateScheduleEntry checks an entry against its week. A missing work date is derived
// from the day index; times are dropped for every status other than the working one.
func ValidateScheduleEntry(entry *domain.ShiftEntry, week *domain.WeekPeriod) error {
	if entry.DayOfWeek < 0 || entry.DayOfWeek >= domain.DaysPerWeek {
		return fmt.Errorf("Wochentag %d ist ungültig, erlaubt sind 0 (Montag) bis 6 (Sonntag)", entry.DayOfWeek)
	}

	expected := week.DayDate(entry.DayOfWeek)
	if entry.WorkDate.IsZero() {
		entry.WorkDate = expected
	} else if !domain.SameDate(entry.WorkDate, expected) {
		return fmt.Errorf("Das Datum muss %s sein", expected.Format("02.01.2006"))
	}

	if entry.Status == "" {
		return errors.New("Der Status darf nicht leer sein")
	}

	if !entry.Status.IsWorking() {
		entry.StartTime = nil
		entry.EndTime = nil
		return nil
	}

	if (entry.StartTime == nil) != (entry.EndTime == nil) {
		return errors.New("Beginn und Ende müssen gemeinsam angegeben werden")
	}

	return nil
}
