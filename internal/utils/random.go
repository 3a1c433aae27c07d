package utils

import (
	"fmt"
	"math/rand"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

var commonFirstNames = []string{
	"Anna", "Lena", "Marie", "Sophie", "Laura", "Julia", "Lisa", "Sarah", "Katharina", "Hannah",
	"Jonas", "Lukas", "Felix", "Paul", "Max", "Leon", "Tim", "Jan", "Niklas", "Moritz",
	"Özlem", "Ayşe", "Jörg", "Jürgen", "Bärbel", "Günther",
}

var commonLastNames = []string{
	"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann",
	"Schäfer", "Koch", "Bauer", "Richter", "Klein", "Wolf", "Schröder", "Neumann", "Schwarz", "Zimmermann",
	"Yılmaz", "Kaya", "Nowak",
}

var staffRoles = []string{
	"Erzieherin",
	"Erzieher",
	"Kinderpflegerin",
	"Sozialassistentin",
	"Heilerziehungspflegerin",
	"Springerin",
}

func GenerateRandomStaff(groupIDs []int64) *domain.Staff {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]

	staff := &domain.Staff{
		FirstName:      firstName,
		LastName:       lastName,
		FullName:       domain.ComposeFullName(firstName, lastName),
		Role:           staffRoles[rand.Intn(len(staffRoles))],
		EmploymentType: domain.EmploymentFullTime,
		IsActive:       true,
	}

	hours := 39.0
	if rand.Intn(3) == 0 {
		staff.EmploymentType = domain.EmploymentPartTime
		hours = float64(20 + rand.Intn(10))
	}
	// roughly one in eight is an intern
	if rand.Intn(8) == 0 {
		staff.Role = "Praktikant"
		staff.EmploymentType = domain.EmploymentIntern
		staff.IsIntern = true
		hours = 30
	}
	staff.WeeklyHours = &hours

	if len(groupIDs) > 0 && rand.Intn(5) != 0 {
		groupID := groupIDs[rand.Intn(len(groupIDs))]
		staff.GroupID = &groupID
	}

	return staff
}

// shift start times between 06:00 and 10:00 in quarter hours
func randomShiftTimes() (domain.TimeOfDay, domain.TimeOfDay) {
	start := domain.NewTimeOfDay(6, 0) + domain.TimeOfDay(rand.Intn(17)*15)
	length := domain.TimeOfDay((16 + rand.Intn(17)) * 15) // 4h to 8h
	return start, start + length
}

func randomStatus() domain.Status {
	n := rand.Intn(100)
	switch {
	case n < 80:
		return domain.StatusNormal
	case n < 87:
		return domain.StatusOff
	case n < 92:
		return domain.StatusSick
	case n < 95:
		return domain.StatusSchool
	case n < 98:
		return domain.StatusVacation
	default:
		return domain.StatusTraining
	}
}

// GenerateRandomWeekEntries plans Monday to Friday for one staff member; minutes are recalculated.
func GenerateRandomWeekEntries(week *domain.WeekPeriod, staffID int64) []*domain.ShiftEntry {
	entries := make([]*domain.ShiftEntry, 0, 5)
	for day := 0; day < 5; day++ {
		entry := &domain.ShiftEntry{
			WeeklyScheduleID: week.ID,
			StaffID:          staffID,
			DayOfWeek:        day,
			WorkDate:         week.DayDate(day),
			Status:           randomStatus(),
		}
		if entry.Status == domain.StatusNormal {
			start, end := randomShiftTimes()
			entry.StartTime = &start
			entry.EndTime = &end
		}
		roster.Recalculate(entry)
		entries = append(entries, entry)
	}
	return entries
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	randomPassword := make([]rune, length)
	for i := range randomPassword {
		randomPassword[i] = letters[rand.Intn(len(letters))]
	}
	return string(randomPassword)
}
