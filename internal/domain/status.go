package domain

import "strings"

// Status is the raw status label stored on a shift entry.
type Status string

const (
	StatusNormal           Status = "normal"
	StatusOff              Status = "frei"
	StatusSick             Status = "krank"
	StatusSchool           Status = "Schule"
	StatusVocationalSchool Status = "Fachschule"
	StatusVacation         Status = "Urlaub"
	StatusHoliday          Status = "Feiertag"
	StatusTraining         Status = "Fortbildung"
)

// StatusKind is the closed set of statuses a label can resolve to.
type StatusKind int

const (
	KindUnknown StatusKind = iota
	KindNormal
	KindOff
	KindSick
	KindSchool
	KindVocationalSchool
	KindVacation
	KindHoliday
	KindTraining
)

var canonicalStatuses = map[StatusKind]Status{
	KindNormal:           StatusNormal,
	KindOff:              StatusOff,
	KindSick:             StatusSick,
	KindSchool:           StatusSchool,
	KindVocationalSchool: StatusVocationalSchool,
	KindVacation:         StatusVacation,
	KindHoliday:          StatusHoliday,
	KindTraining:         StatusTraining,
}

var statusKinds = func() map[string]StatusKind {
	m := make(map[string]StatusKind, len(canonicalStatuses))
	for kind, status := range canonicalStatuses {
		m[strings.ToLower(string(status))] = kind
	}
	return m
}()

// Kind resolves the label case-insensitively. Labels outside the vocabulary
// resolve to KindUnknown and are treated like any other non-working status.
func (s Status) Kind() StatusKind {
	if kind, ok := statusKinds[strings.ToLower(string(s))]; ok {
		return kind
	}
	return KindUnknown
}

// IsWorking reports whether the label denotes an on-duty shift, ignoring case.
func (s Status) IsWorking() bool {
	return s.Kind() == KindNormal
}

// Canonical returns the stored spelling of the kind, or "" for KindUnknown.
func (k StatusKind) Canonical() Status {
	return canonicalStatuses[k]
}

func (k StatusKind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return string(k.Canonical())
}

// KnownStatuses lists every canonical label.
func KnownStatuses() []Status {
	return []Status{
		StatusNormal,
		StatusOff,
		StatusSick,
		StatusSchool,
		StatusVocationalSchool,
		StatusVacation,
		StatusHoliday,
		StatusTraining,
	}
}
