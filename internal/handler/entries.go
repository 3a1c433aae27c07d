package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
	"github.com/zuacaldeira/kita-dienstplan/internal/utils"
)

// entryStore is the storage needed to maintain single shift entries.
type entryStore interface {
	GetWeeklyScheduleByID(id int64) (*domain.WeekPeriod, error)
	GetScheduleEntryByID(id int64) (*domain.ShiftEntry, error)
	CreateScheduleEntry(entry *domain.ShiftEntry, actor string) error
	UpdateScheduleEntry(entry *domain.ShiftEntry, actor string) error
	DeleteScheduleEntry(id int64) error
}

// parseShiftTimes parses optional "HH:MM" values. An empty string clears the time.
func parseShiftTimes(start, end *string) (startTime, endTime *domain.TimeOfDay, err error) {
	parse := func(value *string) (*domain.TimeOfDay, error) {
		if value == nil || *value == "" {
			return nil, nil
		}
		t, err := domain.ParseTimeOfDay(*value)
		if err != nil {
			return nil, errors.New("Ungültige Uhrzeit, erwartet HH:MM")
		}
		return &t, nil
	}

	if startTime, err = parse(start); err != nil {
		return nil, nil, err
	}
	if endTime, err = parse(end); err != nil {
		return nil, nil, err
	}
	return startTime, endTime, nil
}

// placeEntry sets the day and date of entry. Without a day index the day is derived
// from the work date, which then has to fall inside the week.
func placeEntry(entry *domain.ShiftEntry, week *domain.WeekPeriod, dayOfWeek *int, workDate *string) error {
	if workDate != nil {
		date, err := parseDate(*workDate)
		if err != nil {
			return err
		}
		entry.WorkDate = date
	}

	switch {
	case dayOfWeek != nil:
		entry.DayOfWeek = *dayOfWeek
	case !entry.WorkDate.IsZero():
		day, ok := week.DayIndex(entry.WorkDate)
		if !ok {
			return errors.New("Das Datum liegt nicht in dieser Woche")
		}
		entry.DayOfWeek = day
	default:
		return errors.New("Wochentag oder Datum muss angegeben werden")
	}
	return nil
}

func (h *Handler) CreateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeeklyScheduleID int64   `json:"weeklyScheduleID" validate:"required,gt=0"`
		StaffID          int64   `json:"staffID" validate:"required,gt=0"`
		DayOfWeek        *int    `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
		WorkDate         *string `json:"workDate" validate:"omitempty,datetime=2006-01-02"`
		Status           string  `json:"status" validate:"required,max=50"`
		StartTime        *string `json:"startTime"`
		EndTime          *string `json:"endTime"`
		Notes            string  `json:"notes" validate:"max=1000"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	week, err := h.entries.GetWeeklyScheduleByID(req.WeeklyScheduleID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Wochenplan existiert nicht")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	startTime, endTime, err := parseShiftTimes(req.StartTime, req.EndTime)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry := &domain.ShiftEntry{
		WeeklyScheduleID: week.ID,
		StaffID:          req.StaffID,
		Status:           domain.Status(req.Status),
		StartTime:        startTime,
		EndTime:          endTime,
		Notes:            req.Notes,
	}
	if err := placeEntry(entry, week, req.DayOfWeek, req.WorkDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateScheduleEntry(entry, week); err != nil {
		h.badRequest(w, r, err)
		return
	}
	roster.Recalculate(entry)

	if err := h.entries.CreateScheduleEntry(entry, actor(r)); err != nil {
		h.storageError(w, r, err, "Eintrag konnte nicht angelegt werden")
		return
	}

	h.invalidateTotals(r.Context(), week.Year, week.WeekNumber)

	h.successResponse(w, r, "Eintrag angelegt", entry)
}

func (h *Handler) GetScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(ScheduleEntryCtx).(*domain.ShiftEntry)
	h.successResponse(w, r, "Eintrag geladen", entry)
}

func (h *Handler) UpdateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status    *string `json:"status" validate:"omitempty,min=1,max=50"`
		StartTime *string `json:"startTime"`
		EndTime   *string `json:"endTime"`
		Notes     *string `json:"notes" validate:"omitempty,max=1000"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry := r.Context().Value(ScheduleEntryCtx).(*domain.ShiftEntry)

	week, err := h.entries.GetWeeklyScheduleByID(entry.WeeklyScheduleID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	startTime, endTime, err := parseShiftTimes(req.StartTime, req.EndTime)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Status != nil {
		entry.Status = domain.Status(*req.Status)
	}
	if req.StartTime != nil {
		entry.StartTime = startTime
	}
	if req.EndTime != nil {
		entry.EndTime = endTime
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := utils.ValidateScheduleEntry(entry, week); err != nil {
		h.badRequest(w, r, err)
		return
	}
	roster.Recalculate(entry)

	if err := h.entries.UpdateScheduleEntry(entry, actor(r)); err != nil {
		h.storageError(w, r, err, "Eintrag konnte nicht geändert werden, bitte erneut versuchen")
		return
	}

	h.invalidateTotals(r.Context(), week.Year, week.WeekNumber)

	h.successResponse(w, r, "Eintrag geändert", entry)
}

func (h *Handler) DeleteScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(ScheduleEntryCtx).(*domain.ShiftEntry)

	week, err := h.entries.GetWeeklyScheduleByID(entry.WeeklyScheduleID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.entries.DeleteScheduleEntry(entry.ID); err != nil {
		h.storageError(w, r, err, "Eintrag existiert nicht")
		return
	}

	h.invalidateTotals(r.Context(), week.Year, week.WeekNumber)

	h.successResponse(w, r, "Eintrag gelöscht", nil)
}
