package domain

import "time"

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedBy   string    `json:"updatedBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int32     `json:"-"`
}

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentIntern   EmploymentType = "intern"
)

type Staff struct {
	ID              int64          `json:"id"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	FullName        string         `json:"fullName"`
	Role            string         `json:"role"`
	GroupID         *int64         `json:"groupID"` // nil when the staff member belongs to no group
	GroupName       string         `json:"groupName,omitempty"`
	EmploymentType  EmploymentType `json:"employmentType"`
	WeeklyHours     *float64       `json:"weeklyHours"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	IsIntern        bool           `json:"isIntern"`
	IsActive        bool           `json:"isActive"`
	HireDate        *time.Time     `json:"hireDate"`
	TerminationDate *time.Time     `json:"terminationDate"`
	CreatedBy       string         `json:"createdBy"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedBy       string         `json:"updatedBy"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	Version         int32          `json:"-"`
}

// ComposeFullName builds the display name stored in Staff.FullName.
func ComposeFullName(firstName, lastName string) string {
	switch {
	case firstName == "":
		return lastName
	case lastName == "":
		return firstName
	default:
		return firstName + " " + lastName
	}
}
