package domain

import "time"

// ShiftEntry is one staff member's planned activity for one day of a week.
type ShiftEntry struct {
	ID               int64      `json:"id"`
	WeeklyScheduleID int64      `json:"weeklyScheduleID"`
	StaffID          int64      `json:"staffID"`
	DayOfWeek        int        `json:"dayOfWeek"` // 0=Monday, 6=Sunday
	WorkDate         time.Time  `json:"workDate"`
	Status           Status     `json:"status"`
	StartTime        *TimeOfDay `json:"startTime"`
	EndTime          *TimeOfDay `json:"endTime"`
	WorkingMinutes   int        `json:"workingMinutes"`
	BreakMinutes     int        `json:"breakMinutes"`
	Notes            string     `json:"notes"`
	CreatedBy        string     `json:"createdBy"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedBy        string     `json:"updatedBy"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Version          int32      `json:"-"`
}

// ShiftEntryView is a shift entry joined with the staff attributes a client displays.
type ShiftEntryView struct {
	ShiftEntry
	StaffName             string `json:"staffName"`
	StaffRole             string `json:"staffRole"`
	GroupName             string `json:"groupName"`
	WorkingHoursFormatted string `json:"workingHoursFormatted"`
	BreakTimeFormatted    string `json:"breakTimeFormatted"`
}
