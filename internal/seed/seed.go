package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/repository"
)

// column aliases, German spreadsheet headers included
var headerAliases = map[string]string{
	"first_name":      "first_name",
	"vorname":         "first_name",
	"last_name":       "last_name",
	"nachname":        "last_name",
	"role":            "role",
	"rolle":           "role",
	"funktion":        "role",
	"group":           "group",
	"gruppe":          "group",
	"employment_type": "employment_type",
	"anstellung":      "employment_type",
	"weekly_hours":    "weekly_hours",
	"wochenstunden":   "weekly_hours",
	"email":           "email",
	"e-mail":          "email",
	"phone":           "phone",
	"telefon":         "phone",
	"is_intern":       "is_intern",
	"praktikant":      "is_intern",
	"hire_date":       "hire_date",
	"eintritt":        "hire_date",
}

var employmentAliases = map[string]domain.EmploymentType{
	"full-time": domain.EmploymentFullTime,
	"vollzeit":  domain.EmploymentFullTime,
	"part-time": domain.EmploymentPartTime,
	"teilzeit":  domain.EmploymentPartTime,
	"intern":    domain.EmploymentIntern,
	"praktikum": domain.EmploymentIntern,
}

// ParseStaffCSV reads staff rows. The delimiter is ';' when the header contains one, otherwise ','.
// Group names are returned in Staff.GroupName and left unresolved.
func ParseStaffCSV(in io.Reader) ([]*domain.Staff, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(content), "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	firstLine, _, _ := strings.Cut(text, "\n")
	if strings.Contains(firstLine, ";") {
		reader.Comma = ';'
	}
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int)
	for i, header := range headers {
		if name, ok := headerAliases[strings.ToLower(strings.TrimSpace(header))]; ok {
			columns[name] = i
		}
	}
	for _, required := range []string{"first_name", "last_name", "role"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var staffList []*domain.Staff
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		staff, err := staffFromRow(get)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if staff == nil {
			continue
		}
		staffList = append(staffList, staff)
	}

	return staffList, nil
}

// staffFromRow returns nil for blank rows.
func staffFromRow(get func(string) string) (*domain.Staff, error) {
	firstName, lastName := get("first_name"), get("last_name")
	if firstName == "" && lastName == "" {
		return nil, nil
	}

	staff := &domain.Staff{
		FirstName: firstName,
		LastName:  lastName,
		FullName:  domain.ComposeFullName(firstName, lastName),
		Role:      get("role"),
		GroupName: get("group"),
		Email:     get("email"),
		Phone:     get("phone"),
		IsActive:  true,
	}
	if staff.Role == "" {
		return nil, errors.New("role is empty")
	}

	switch strings.ToLower(get("is_intern")) {
	case "", "0", "false", "nein", "n":
	case "1", "true", "ja", "j", "x":
		staff.IsIntern = true
	default:
		return nil, fmt.Errorf("invalid intern flag %q", get("is_intern"))
	}

	staff.EmploymentType = domain.EmploymentFullTime
	if staff.IsIntern {
		staff.EmploymentType = domain.EmploymentIntern
	}
	if value := get("employment_type"); value != "" {
		employment, ok := employmentAliases[strings.ToLower(value)]
		if !ok {
			return nil, fmt.Errorf("invalid employment type %q", value)
		}
		staff.EmploymentType = employment
	}

	if value := get("weekly_hours"); value != "" {
		hours, err := strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weekly hours %q", value)
		}
		staff.WeeklyHours = &hours
	}

	if value := get("hire_date"); value != "" {
		hireDate, err := parseDate(value)
		if err != nil {
			return nil, err
		}
		staff.HireDate = &hireDate
	}

	return staff, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02.01.2006"} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// ImportStaff reads a staff CSV, creates missing groups and inserts staff not yet present.
// It returns the number of inserted staff members.
func ImportStaff(r *repository.Repository, path, actor string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	staffList, err := ParseStaffCSV(file)
	if err != nil {
		return 0, err
	}

	groups, err := r.GetAllGroups(false)
	if err != nil {
		return 0, err
	}
	groupIDs := make(map[string]int64, len(groups))
	for _, group := range groups {
		groupIDs[group.Name] = group.ID
	}

	for _, staff := range staffList {
		if staff.GroupName == "" {
			continue
		}
		id, ok := groupIDs[staff.GroupName]
		if !ok {
			group := &domain.Group{Name: staff.GroupName, IsActive: true}
			if err := r.CreateGroup(group, actor); err != nil {
				return 0, fmt.Errorf("create group %q: %w", staff.GroupName, err)
			}
			slog.Info("Gruppe angelegt", "name", group.Name, "id", group.ID)
			id = group.ID
			groupIDs[group.Name] = id
		}
		staff.GroupID = &id
	}

	inserted, err := r.CreateStaffBatch(staffList, actor)
	if err != nil {
		return 0, err
	}

	slog.Info("Mitarbeiter importiert", "file", path, "rows", len(staffList), "inserted", inserted)
	return inserted, nil
}
