package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/report"
)

func (h *Handler) GetScheduleByWeek(w http.ResponseWriter, r *http.Request) {
	year, week, err := yearWeekParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	entries, err := h.repository.GetScheduleEntriesByWeek(week, year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Dienstplan geladen", entries)
}

func (h *Handler) GetStaffScheduleByWeek(w http.ResponseWriter, r *http.Request) {
	year, week, err := yearWeekParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	staffID, err := strconv.ParseInt(chi.URLParam(r, "staffID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "Ungültige Mitarbeiter-ID")
		return
	}

	entries, err := h.repository.GetScheduleEntriesByStaffAndWeek(staffID, week, year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Dienstplan geladen", entries)
}

func (h *Handler) GetScheduleByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	entries, err := h.repository.GetScheduleEntriesByDate(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Dienstplan geladen", entries)
}

// GetStatuses lists the canonical status labels.
func (h *Handler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Status geladen", domain.KnownStatuses())
}

func (h *Handler) GetScheduleByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(chi.URLParam(r, "status"))

	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if to.Before(from) {
		h.badRequest(w, r, errors.New("Das Enddatum liegt vor dem Startdatum"))
		return
	}

	entries, err := h.repository.GetScheduleEntriesByStatus(status, from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Einträge geladen", entries)
}

func (h *Handler) GetOnDuty(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	t, err := domain.ParseTimeOfDay(r.URL.Query().Get("time"))
	if err != nil {
		h.badRequest(w, r, errors.New("Ungültige Uhrzeit, erwartet HH:MM"))
		return
	}

	onDuty, err := h.roster.WhoIsWorkingAt(r.Context(), date, t)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Anwesende Mitarbeiter geladen", onDuty)
}

func (h *Handler) GetDailyTotals(w http.ResponseWriter, r *http.Request) {
	year, week, err := yearWeekParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	key := dailyTotalsKey(year, week)

	var totals []domain.DailyTotal
	if h.cacheGet(r.Context(), key, &totals) {
		h.successResponse(w, r, "Tagessummen geladen", totals)
		return
	}

	totals, err = h.roster.DailyTotals(r.Context(), week, year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.cacheSet(r.Context(), key, totals)

	h.successResponse(w, r, "Tagessummen geladen", totals)
}

func (h *Handler) GetWeeklyStaffTotals(w http.ResponseWriter, r *http.Request) {
	year, week, err := yearWeekParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	key := weeklyTotalsKey(year, week)

	var totals []domain.WeeklyStaffTotal
	if h.cacheGet(r.Context(), key, &totals) {
		h.successResponse(w, r, "Wochensummen geladen", totals)
		return
	}

	totals, err = h.roster.WeeklyStaffTotals(r.Context(), week, year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.cacheSet(r.Context(), key, totals)

	h.successResponse(w, r, "Wochensummen geladen", totals)
}

func (h *Handler) GetWeeklyReport(w http.ResponseWriter, r *http.Request) {
	year, week, err := yearWeekParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	snapshot, daily, weekly, err := h.roster.Week(r.Context(), week, year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filename := fmt.Sprintf("dienstplan_kw%02d_%d.pdf", week, year)
	h.writePDF(w, r, filename, func(out io.Writer) error {
		return report.WeeklyRoster(out, snapshot, daily, weekly)
	})
}
