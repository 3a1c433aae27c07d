package domain

const (
	MailTypeResetPassword = "reset_password"
	MailTypeWeeklyRoster  = "weekly_roster"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type WeeklyRosterMailDay struct {
	DayName string `json:"dayName"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Hours   string `json:"hours"`
	Notes   string `json:"notes"`
}

type WeeklyRosterMailData struct {
	FullName   string                `json:"fullName"`
	WeekNumber int                   `json:"weekNumber"`
	Year       int                   `json:"year"`
	StartDate  string                `json:"startDate"`
	EndDate    string                `json:"endDate"`
	Days       []WeeklyRosterMailDay `json:"days"`
	TotalHours string                `json:"totalHours"`
	TotalBreak string                `json:"totalBreak"`
	DaysWorked int                   `json:"daysWorked"`
}
