package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/wneessen/go-mail"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

type mailKind struct {
	file    string
	data    func() any
	subject func(data any) string
}

var mailKinds = map[string]mailKind{
	domain.MailTypeResetPassword: {
		file: "reset_password_otp_email.html",
		data: func() any { return &domain.ResetPasswordMailData{} },
		subject: func(any) string {
			return "Kita Dienstplan - Passwort zurücksetzen"
		},
	},
	domain.MailTypeWeeklyRoster: {
		file: "weekly_roster_email.html",
		data: func() any { return &domain.WeeklyRosterMailData{} },
		subject: func(data any) string {
			d := data.(*domain.WeeklyRosterMailData)
			return fmt.Sprintf("Kita Dienstplan - Ihr Dienstplan KW %d/%d", d.WeekNumber, d.Year)
		},
	},
}

// renderer turns queued mail messages into ready to send mails.
type renderer struct {
	from      string
	templates map[string]*template.Template
}

func newRenderer(dir, from string) (*renderer, error) {
	r := &renderer{from: from, templates: make(map[string]*template.Template)}
	for typ, kind := range mailKinds {
		tmpl, err := template.ParseFiles(filepath.Join(dir, kind.file))
		if err != nil {
			return nil, err
		}
		r.templates[typ] = tmpl
	}
	return r, nil
}

func (r *renderer) render(body []byte) (*mail.Msg, error) {
	var envelope struct {
		Type string          `json:"type"`
		To   string          `json:"to"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}

	kind, ok := mailKinds[envelope.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported mail type %q", envelope.Type)
	}

	data := kind.data()
	if err := json.Unmarshal(envelope.Data, data); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", envelope.Type, err)
	}

	msg := mail.NewMsg()
	if err := msg.From(r.from); err != nil {
		return nil, err
	}
	if err := msg.To(envelope.To); err != nil {
		return nil, err
	}
	msg.Subject(kind.subject(data))
	if err := msg.SetBodyHTMLTemplate(r.templates[envelope.Type], data); err != nil {
		return nil, err
	}

	return msg, nil
}
