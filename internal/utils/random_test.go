package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
	"github.com/zuacaldeira/kita-dienstplan/internal/utils"
)

func TestGenerateRandomWeekEntries(t *testing.T) {
	week := domain.NewWeekPeriod(2025, 2)
	week.ID = 7

	for i := 0; i < 50; i++ {
		entries := utils.GenerateRandomWeekEntries(&week, 3)
		require.Len(t, entries, 5)

		for day, entry := range entries {
			assert.Equal(t, int64(7), entry.WeeklyScheduleID)
			assert.Equal(t, day, entry.DayOfWeek)
			assert.Equal(t, week.DayDate(day), entry.WorkDate)
			require.NoError(t, utils.ValidateScheduleEntry(entry, &week))

			want := roster.ComputeShift(entry.Status, entry.StartTime, entry.EndTime)
			assert.Equal(t, want.Working, entry.WorkingMinutes)
			assert.Equal(t, want.Break, entry.BreakMinutes)
			if entry.Status == domain.StatusNormal {
				assert.Positive(t, entry.WorkingMinutes)
			}
		}
	}
}

func TestGenerateRandomStaff(t *testing.T) {
	for i := 0; i < 50; i++ {
		staff := utils.GenerateRandomStaff([]int64{1, 2})
		assert.NotEmpty(t, staff.FullName)
		assert.Equal(t, domain.ComposeFullName(staff.FirstName, staff.LastName), staff.FullName)
		assert.Equal(t, staff.IsIntern, staff.EmploymentType == domain.EmploymentIntern)
		if staff.GroupID != nil {
			assert.Contains(t, []int64{1, 2}, *staff.GroupID)
		}
	}
}

func TestGenerateRandomOTPAndPassword(t *testing.T) {
	assert.Len(t, utils.GenerateRandomOTP(), 6)
	assert.Len(t, []rune(utils.GenerateRandomPassword(12)), 12)
}
