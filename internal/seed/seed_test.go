package seed_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/seed"
)

func TestParseStaffCSV_Comma(t *testing.T) {
	in := "first_name,last_name,role,group,weekly_hours,email,is_intern,hire_date\n" +
		"Anna,Becker,Erzieherin,Käfer,39,anna@kita.de,false,2020-08-01\n" +
		"Paul,Praktikant,Praktikant,Käfer,30,,true,\n" +
		",,,,,,,\n"

	staffList, err := seed.ParseStaffCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, staffList, 2)

	anna := staffList[0]
	assert.Equal(t, "Anna Becker", anna.FullName)
	assert.Equal(t, "Käfer", anna.GroupName)
	assert.Equal(t, domain.EmploymentFullTime, anna.EmploymentType)
	require.NotNil(t, anna.WeeklyHours)
	assert.Equal(t, 39.0, *anna.WeeklyHours)
	require.NotNil(t, anna.HireDate)
	assert.Equal(t, time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC), *anna.HireDate)
	assert.True(t, anna.IsActive)

	paul := staffList[1]
	assert.True(t, paul.IsIntern)
	assert.Equal(t, domain.EmploymentIntern, paul.EmploymentType)
	assert.Nil(t, paul.HireDate)
}

func TestParseStaffCSV_GermanSpreadsheet(t *testing.T) {
	in := "\ufeffVorname;Nachname;Funktion;Gruppe;Anstellung;Wochenstunden;Praktikant;Eintritt\n" +
		"Özlem;Yılmaz;Kinderpflegerin;Bären;Teilzeit;25,5;nein;01.09.2022\n"

	staffList, err := seed.ParseStaffCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, staffList, 1)

	s := staffList[0]
	assert.Equal(t, "Özlem Yılmaz", s.FullName)
	assert.Equal(t, "Kinderpflegerin", s.Role)
	assert.Equal(t, "Bären", s.GroupName)
	assert.Equal(t, domain.EmploymentPartTime, s.EmploymentType)
	require.NotNil(t, s.WeeklyHours)
	assert.Equal(t, 25.5, *s.WeeklyHours)
	assert.False(t, s.IsIntern)
	require.NotNil(t, s.HireDate)
	assert.Equal(t, time.September, s.HireDate.Month())
}

func TestParseStaffCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  string
	}{
		{"missing column", "first_name,last_name\nAnna,Becker\n", `missing column "role"`},
		{"empty role", "first_name,last_name,role\nAnna,Becker,\n", "line 2: role is empty"},
		{"bad hours", "first_name,last_name,role,weekly_hours\nAnna,Becker,Erzieherin,viel\n", "invalid weekly hours"},
		{"bad intern flag", "first_name,last_name,role,is_intern\nAnna,Becker,Erzieherin,vielleicht\n", "invalid intern flag"},
		{"bad employment", "first_name,last_name,role,employment_type\nAnna,Becker,Erzieherin,Minijob\n", "invalid employment type"},
		{"bad date", "first_name,last_name,role,hire_date\nAnna,Becker,Erzieherin,gestern\n", "invalid date"},
		{"empty file", "", "read header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.ParseStaffCSV(strings.NewReader(tt.in))
			assert.ErrorContains(t, err, tt.err)
		})
	}
}
