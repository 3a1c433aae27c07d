package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	h.logger.Error("Interner Serverfehler", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("Ungültiger JSON-Inhalt")
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "Interner Serverfehler", http.StatusInternalServerError)
	}
}

// writePDF renders into memory first so a failing renderer still yields a JSON error.
func (h *Handler) writePDF(w http.ResponseWriter, r *http.Request, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logInternalServerError(r, err)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) conflict(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusConflict, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.writeJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Message: err.Error(),
			Data:    nil,
		})
		return
	}

	h.writeJSON(w, r, http.StatusBadRequest, Response{
		Success: false,
		Message: validationErrors[0].Translate(h.translator),
		Data:    nil,
	})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "Interner Serverfehler",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

var uniqueViolations = map[string]string{
	"age_groups_name_key":                   "Eine Gruppe mit diesem Namen existiert bereits",
	"staff_full_name_key":                   "Ein Mitarbeiter mit diesem Namen existiert bereits",
	"weekly_schedules_week_number_year_key": "Für diese Kalenderwoche existiert bereits ein Wochenplan",
	"schedule_entries_week_staff_day_key":   "Für diesen Mitarbeiter existiert an diesem Tag bereits ein Eintrag",
	"admins_username_key":                   "Benutzername existiert bereits",
	"admins_email_key":                      "E-Mail-Adresse existiert bereits",
}

var foreignKeyViolations = map[string]string{
	"staff_group_id_fkey":                      "Gruppe existiert nicht",
	"schedule_entries_staff_id_fkey":           "Mitarbeiter existiert nicht",
	"schedule_entries_weekly_schedule_id_fkey": "Wochenplan existiert nicht",
}

// storageError maps repository errors: unique violations become conflicts, missing rows
// (also a lost optimistic lock) become noRowsMsg.
func (h *Handler) storageError(w http.ResponseWriter, r *http.Request, err error, noRowsMsg string) {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		if msg, ok := uniqueViolations[pgErr.ConstraintName]; ok {
			h.conflict(w, r, msg)
			return
		}
		if msg, ok := foreignKeyViolations[pgErr.ConstraintName]; ok {
			h.errorResponse(w, r, msg)
			return
		}
		h.internalServerError(w, r, err)
	case errors.Is(err, sql.ErrNoRows):
		h.errorResponse(w, r, noRowsMsg)
	default:
		h.internalServerError(w, r, err)
	}
}
