package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

func TestNewWeekPeriod(t *testing.T) {
	tests := []struct {
		year, week int
		wantStart  time.Time
	}{
		{2025, 1, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)},
		{2025, 2, time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)},
		{2026, 1, time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)},
		{2026, 42, time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)},
		{2021, 1, time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC)},
		{2020, 53, time.Date(2020, time.December, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		w := domain.NewWeekPeriod(tt.year, tt.week)
		assert.Equal(t, tt.wantStart, w.StartDate, "%d/%d", tt.week, tt.year)
		assert.Equal(t, time.Monday, w.StartDate.Weekday())
		assert.Equal(t, tt.wantStart.AddDate(0, 0, 6), w.EndDate)

		y, wk := w.StartDate.ISOWeek()
		assert.Equal(t, tt.year, y)
		assert.Equal(t, tt.week, wk)
	}
}

func TestWeekPeriod_DayIndex(t *testing.T) {
	w := domain.NewWeekPeriod(2025, 2)

	assert.Equal(t, time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC), w.DayDate(2))

	day, ok := w.DayIndex(time.Date(2025, time.January, 12, 15, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, 6, day)

	_, ok = w.DayIndex(time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	_, ok = w.DayIndex(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestComposeFullName(t *testing.T) {
	assert.Equal(t, "Anna Becker", domain.ComposeFullName("Anna", "Becker"))
	assert.Equal(t, "Anna", domain.ComposeFullName("Anna", ""))
	assert.Equal(t, "Becker", domain.ComposeFullName("", "Becker"))
}
