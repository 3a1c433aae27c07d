package main

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/quotedprintable"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

func newTestRenderer(t *testing.T) *renderer {
	t.Helper()
	r, err := newRenderer("../../templates", "dienstplan@kita.de")
	require.NoError(t, err)
	return r
}

func encode(t *testing.T, msg domain.MailMessage) []byte {
	t.Helper()
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return body
}

// subject returns the decoded Subject header.
func subject(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	header := msg.GetGenHeader(mail.HeaderSubject)
	require.Len(t, header, 1)
	decoded, err := new(mime.WordDecoder).DecodeHeader(header[0])
	require.NoError(t, err)
	return decoded
}

// body returns the written message with quoted-printable soft breaks removed.
func body(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	decoded, err := io.ReadAll(quotedprintable.NewReader(&buf))
	require.NoError(t, err)
	return string(decoded)
}

func TestRender_ResetPassword(t *testing.T) {
	r := newTestRenderer(t)

	msg, err := r.render(encode(t, domain.MailMessage{
		Type: domain.MailTypeResetPassword,
		To:   "leitung@kita.de",
		Data: domain.ResetPasswordMailData{FullName: "Kita Leitung", OTP: "123456", Expiration: 15},
	}))
	require.NoError(t, err)

	require.Len(t, msg.GetToString(), 1)
	assert.Contains(t, msg.GetToString()[0], "leitung@kita.de")
	assert.Equal(t, "Kita Dienstplan - Passwort zurücksetzen", subject(t, msg))
	assert.Contains(t, body(t, msg), "123456")
}

func TestRender_WeeklyRoster(t *testing.T) {
	r := newTestRenderer(t)

	msg, err := r.render(encode(t, domain.MailMessage{
		Type: domain.MailTypeWeeklyRoster,
		To:   "anna@kita.de",
		Data: domain.WeeklyRosterMailData{
			FullName:   "Anna Becker",
			WeekNumber: 2,
			Year:       2025,
			Days: []domain.WeeklyRosterMailDay{
				{DayName: "Montag", Date: "06.01.2025", Status: "normal", Start: "08:00", End: "16:30", Hours: "8:00"},
			},
			TotalHours: "8:00",
			DaysWorked: 1,
		},
	}))
	require.NoError(t, err)

	assert.Equal(t, "Kita Dienstplan - Ihr Dienstplan KW 2/2025", subject(t, msg))
	assert.Contains(t, body(t, msg), "Anna Becker")
}

func TestRender_Rejects(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.render([]byte(`{"type":`))
	assert.Error(t, err)

	_, err = r.render(encode(t, domain.MailMessage{Type: "create_user", To: "a@kita.de"}))
	assert.ErrorContains(t, err, "unsupported mail type")

	_, err = r.render(encode(t, domain.MailMessage{Type: domain.MailTypeResetPassword, To: "kein-empfänger"}))
	assert.Error(t, err)
}
