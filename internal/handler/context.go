package handler

type ContextKey string

var (
	RoleCtxKey        ContextKey = "role"
	SubCtxKey         ContextKey = "sub"
	UsernameCtxKey    ContextKey = "username"
	MyInfoCtx         ContextKey = "myInfo"
	GroupCtx          ContextKey = "group"
	StaffCtx          ContextKey = "staff"
	WeeklyScheduleCtx ContextKey = "weeklySchedule"
	ScheduleEntryCtx  ContextKey = "scheduleEntry"
)
