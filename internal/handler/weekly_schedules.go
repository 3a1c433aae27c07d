package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"sort"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
	"github.com/zuacaldeira/kita-dienstplan/internal/utils"
)

func (h *Handler) GetAllWeeklySchedules(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.repository.GetAllWeeklySchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Wochenpläne geladen", weeks)
}

func (h *Handler) CreateWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeekNumber int     `json:"weekNumber" validate:"required,min=1,max=53"`
		Year       int     `json:"year" validate:"required,min=1900,max=9999"`
		StartDate  *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
		Notes      string  `json:"notes" validate:"max=2000"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	week := domain.NewWeekPeriod(req.Year, req.WeekNumber)
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		week.StartDate = start
		week.EndDate = start.AddDate(0, 0, domain.DaysPerWeek-1)
	}
	week.Notes = req.Notes

	if err := utils.ValidateWeekPeriod(&week); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateWeeklySchedule(&week, actor(r)); err != nil {
		h.storageError(w, r, err, "Wochenplan konnte nicht angelegt werden")
		return
	}

	h.successResponse(w, r, "Wochenplan angelegt", week)
}

func (h *Handler) GetWeeklyScheduleByWeek(w http.ResponseWriter, r *http.Request) {
	year, week, err := yearWeekParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	period, err := h.repository.GetWeeklyScheduleByWeek(week, year)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Wochenplan existiert nicht")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Wochenplan geladen", period)
}

func (h *Handler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeeklyScheduleCtx).(*domain.WeekPeriod)
	h.successResponse(w, r, "Wochenplan geladen", week)
}

func (h *Handler) UpdateWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes *string `json:"notes" validate:"omitempty,max=2000"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	week := r.Context().Value(WeeklyScheduleCtx).(*domain.WeekPeriod)

	if req.Notes != nil {
		week.Notes = *req.Notes
	}

	if err := h.repository.UpdateWeeklySchedule(week, actor(r)); err != nil {
		h.storageError(w, r, err, "Wochenplan konnte nicht geändert werden, bitte erneut versuchen")
		return
	}

	h.successResponse(w, r, "Wochenplan geändert", week)
}

func (h *Handler) DeleteWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeeklyScheduleCtx).(*domain.WeekPeriod)

	if err := h.repository.DeleteWeeklySchedule(week.ID); err != nil {
		h.storageError(w, r, err, "Wochenplan existiert nicht")
		return
	}

	h.invalidateTotals(r.Context(), week.Year, week.WeekNumber)

	h.successResponse(w, r, "Wochenplan gelöscht", nil)
}

// NotifyWeeklySchedule queues one roster mail per staff member who has entries and an e-mail address.
func (h *Handler) NotifyWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeeklyScheduleCtx).(*domain.WeekPeriod)

	snapshot, _, totals, err := h.roster.Week(r.Context(), week.WeekNumber, week.Year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	sent := 0
	for _, total := range totals {
		staff, ok := snapshot.Staff[total.StaffID]
		if !ok || staff.Email == "" {
			continue
		}

		msg := domain.MailMessage{
			Type: domain.MailTypeWeeklyRoster,
			To:   staff.Email,
			Data: weeklyRosterMail(snapshot, staff, total),
		}
		if err := h.publishMail(r.Context(), msg); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		sent++
	}

	h.successResponse(w, r, "Dienstpläne wurden versendet", map[string]int{"sent": sent})
}

func weeklyRosterMail(snapshot *roster.WeekSnapshot, staff domain.Staff, total domain.WeeklyStaffTotal) domain.WeeklyRosterMailData {
	data := domain.WeeklyRosterMailData{
		FullName:   staff.FullName,
		WeekNumber: snapshot.Week.WeekNumber,
		Year:       snapshot.Week.Year,
		StartDate:  snapshot.Week.StartDate.Format("02.01.2006"),
		EndDate:    snapshot.Week.EndDate.Format("02.01.2006"),
		TotalHours: total.TotalHoursFormatted,
		TotalBreak: total.TotalBreakFormatted,
		DaysWorked: total.DaysWorked,
	}

	var entries []domain.ShiftEntry
	for _, entry := range snapshot.Entries {
		if entry.StaffID == staff.ID {
			entries = append(entries, entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DayOfWeek < entries[j].DayOfWeek
	})

	for _, entry := range entries {
		day := domain.WeeklyRosterMailDay{
			DayName: roster.DayName(entry.DayOfWeek),
			Date:    entry.WorkDate.Format("02.01.2006"),
			Status:  string(entry.Status),
			Hours:   roster.FormatMinutes(entry.WorkingMinutes),
			Notes:   entry.Notes,
		}
		if entry.StartTime != nil {
			day.Start = entry.StartTime.String()
		}
		if entry.EndTime != nil {
			day.End = entry.EndTime.String()
		}
		data.Days = append(data.Days, day)
	}

	return data
}
