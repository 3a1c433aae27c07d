package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuacaldeira/kita-dienstplan/internal/config"
	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster/mock_roster"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	cfg := &config.Config{Environment: "test"}
	cfg.JWT.Secret = testSecret
	cfg.JWT.Expiration = 3600
	cfg.CORS.AllowedOrigins = []string{"http://localhost:4200"}
	cfg.Redis.OperationExpiration = 1
	cfg.Redis.TotalsExpiration = 60
	return cfg
}

func newTestHandler(t *testing.T) (*Handler, *mock_roster.MockEntrySource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mock_roster.NewMockEntrySource(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h, err := newHandler(testConfig(), nil, roster.NewService(source), nil, nil, logger)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h, source
}

func sessionCookie(t *testing.T, h *Handler, role domain.Role) *http.Cookie {
	t.Helper()
	token, _, err := h.signToken(&domain.Admin{ID: 1, Username: "leitung", Role: role}, time.Now())
	require.NoError(t, err)
	return &http.Cookie{Name: tokenCookieName, Value: token}
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) Response {
	t.Helper()
	var raw struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return Response{Success: raw.Success, Message: raw.Message}
}

func tod(t *testing.T, s string) *domain.TimeOfDay {
	t.Helper()
	v, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &v
}

func testSnapshot(t *testing.T) *roster.WeekSnapshot {
	t.Helper()
	week := domain.NewWeekPeriod(2025, 2)
	groupID := int64(10)

	shift := func(staffID int64, day int, status domain.Status, start, end string) domain.ShiftEntry {
		e := domain.ShiftEntry{
			WeeklyScheduleID: 1,
			StaffID:          staffID,
			DayOfWeek:        day,
			WorkDate:         week.DayDate(day),
			Status:           status,
		}
		if start != "" {
			e.StartTime = tod(t, start)
			e.EndTime = tod(t, end)
		}
		roster.Recalculate(&e)
		return e
	}

	return &roster.WeekSnapshot{
		Week: week,
		Entries: []domain.ShiftEntry{
			shift(1, 1, domain.StatusNormal, "07:30", "16:00"),
			shift(1, 0, domain.StatusNormal, "08:00", "16:30"),
			shift(2, 0, domain.StatusNormal, "09:00", "13:00"),
			shift(2, 1, domain.StatusSick, "", ""),
		},
		Staff: map[int64]domain.Staff{
			1: {ID: 1, FullName: "Anna Becker", Role: "Erzieherin", GroupID: &groupID, Email: "anna@kita.de"},
			2: {ID: 2, FullName: "Paul Praktikant", Role: "Praktikant", IsIntern: true},
		},
		Groups: map[int64]domain.Group{
			10: {ID: 10, Name: "Käfer"},
		},
	}
}

func TestAuth_RequiresSessionCookie(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/schedules/daily-totals/2025/2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec, nil)
	assert.False(t, resp.Success)
	assert.Equal(t, "Nicht angemeldet", resp.Message)
}

func TestAuth_RejectsForeignSignature(t *testing.T) {
	h, _ := newTestHandler(t)

	other, err := newHandler(testConfig(), nil, nil, nil, nil, nil)
	require.NoError(t, err)
	other.config.JWT.Secret = "another-secret"

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/daily-totals/2025/2", nil)
	req.AddCookie(sessionCookie(t, other, domain.RoleAdmin))
	rec := serve(h, req)

	resp := decode(t, rec, nil)
	assert.False(t, resp.Success)
	assert.Equal(t, "Ungültiges Token", resp.Message)
}

func TestRequiredRole_RejectsViewer(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/schedules/entries", strings.NewReader(`{}`))
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	resp := decode(t, rec, nil)
	assert.False(t, resp.Success)
	assert.Equal(t, "Keine Berechtigung", resp.Message)
}

func TestLogin_TranslatesValidationErrors(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"geheim"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec, nil)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "username")
	assert.Contains(t, resp.Message, "Pflichtfeld")
}

func TestLogin_RejectsMalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ungültiger JSON-Inhalt", decode(t, rec, nil).Message)
}

func TestGetDailyTotals(t *testing.T) {
	h, source := newTestHandler(t)
	source.EXPECT().EntriesForWeek(gomock.Any(), 2, 2025).Return(testSnapshot(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/daily-totals/2025/2", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	var totals []domain.DailyTotal
	resp := decode(t, rec, &totals)
	require.True(t, resp.Success)
	require.Len(t, totals, 2)

	monday := totals[0]
	assert.Equal(t, "Montag", monday.DayName)
	assert.Equal(t, 480+240, monday.TotalMinutesWithInterns)
	assert.Equal(t, 480, monday.TotalMinutesWithoutInterns)
	assert.Equal(t, "12:00", monday.HoursWithInterns)
	assert.Equal(t, 2, monday.TotalStaffCount)
	assert.Equal(t, 1, monday.StaffCountWithoutInterns)
}

func TestGetWeeklyStaffTotals(t *testing.T) {
	h, source := newTestHandler(t)
	source.EXPECT().EntriesForWeek(gomock.Any(), 2, 2025).Return(testSnapshot(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/weekly-totals/2025/2", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	var totals []domain.WeeklyStaffTotal
	resp := decode(t, rec, &totals)
	require.True(t, resp.Success)
	require.Len(t, totals, 2)

	// no group sorts before "Käfer"
	assert.Equal(t, "Paul Praktikant", totals[0].FullName)
	assert.Equal(t, 1, totals[0].DaysSick)
	assert.Equal(t, "Anna Becker", totals[1].FullName)
	assert.Equal(t, "16:00", totals[1].TotalHoursFormatted)
	assert.Equal(t, 2, totals[1].DaysWorked)
}

func TestGetTotals_RejectsInvalidWeek(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/daily-totals/2025/54", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ungültige Kalenderwoche", decode(t, rec, nil).Message)
}

func TestGetTotals_SourceFailure(t *testing.T) {
	h, source := newTestHandler(t)
	source.EXPECT().EntriesForWeek(gomock.Any(), 2, 2025).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/weekly-totals/2025/2", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Interner Serverfehler", decode(t, rec, nil).Message)
}

func TestGetOnDuty(t *testing.T) {
	h, source := newTestHandler(t)
	snapshot := testSnapshot(t)
	monday := snapshot.Week.StartDate

	source.EXPECT().EntriesForDate(gomock.Any(), gomock.Any()).Return(&roster.DaySnapshot{
		Date:    monday,
		Entries: snapshot.Entries,
		Staff:   snapshot.Staff,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/on-duty?date=2025-01-06&time=08:30", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	var onDuty []roster.OnDuty
	resp := decode(t, rec, &onDuty)
	require.True(t, resp.Success)
	require.Len(t, onDuty, 1)
	assert.Equal(t, "Anna Becker", onDuty[0].StaffName)
}

func TestGetOnDuty_RejectsInvalidTime(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/on-duty?date=2025-01-06&time=25:00", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ungültige Uhrzeit, erwartet HH:MM", decode(t, rec, nil).Message)
}

func TestGetWeeklyReport(t *testing.T) {
	h, source := newTestHandler(t)
	source.EXPECT().EntriesForWeek(gomock.Any(), 2, 2025).Return(testSnapshot(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/report/2025/2", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleViewer))
	rec := serve(h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "dienstplan_kw02_2025.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestHeartbeat(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWeeklyRosterMail(t *testing.T) {
	snapshot := testSnapshot(t)
	totals := roster.WeeklyStaffTotals(snapshot)

	var anna domain.WeeklyStaffTotal
	for _, total := range totals {
		if total.StaffID == 1 {
			anna = total
		}
	}

	data := weeklyRosterMail(snapshot, snapshot.Staff[1], anna)

	assert.Equal(t, "Anna Becker", data.FullName)
	assert.Equal(t, "06.01.2025", data.StartDate)
	assert.Equal(t, "12.01.2025", data.EndDate)
	assert.Equal(t, "16:00", data.TotalHours)
	require.Len(t, data.Days, 2)
	assert.Equal(t, "Montag", data.Days[0].DayName)
	assert.Equal(t, "08:00", data.Days[0].Start)
	assert.Equal(t, "16:30", data.Days[0].End)
	assert.Equal(t, "8:00", data.Days[0].Hours)
	assert.Equal(t, "Dienstag", data.Days[1].DayName)
}
