package domain

import "time"

type DailyTotal struct {
	DayOfWeek                  int       `json:"dayOfWeek"`
	WorkDate                   time.Time `json:"workDate"`
	DayName                    string    `json:"dayName"`
	TotalMinutesWithoutInterns int       `json:"totalMinutesWithoutInterns"`
	TotalMinutesWithInterns    int       `json:"totalMinutesWithInterns"`
	HoursWithoutInterns        string    `json:"hoursWithoutInterns"`
	HoursWithInterns           string    `json:"hoursWithInterns"`
	StaffCountWithoutInterns   int       `json:"staffCountWithoutInterns"`
	TotalStaffCount            int       `json:"totalStaffCount"`
}

type WeeklyStaffTotal struct {
	StaffID             int64  `json:"staffID"`
	FullName            string `json:"fullName"`
	Role                string `json:"role"`
	GroupName           string `json:"groupName"`
	TotalWorkingMinutes int    `json:"totalWorkingMinutes"`
	TotalBreakMinutes   int    `json:"totalBreakMinutes"`
	TotalHoursFormatted string `json:"totalHoursFormatted"`
	TotalBreakFormatted string `json:"totalBreakFormatted"`
	DaysWorked          int    `json:"daysWorked"`
	DaysSick            int    `json:"daysSick"`
	DaysOff             int    `json:"daysOff"`
	SchoolDays          int    `json:"schoolDays"`
}
