package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func yearWeekParams(r *http.Request) (year, week int, err error) {
	year, err = strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1900 || year > 9999 {
		return 0, 0, errors.New("Ungültiges Jahr")
	}

	week, err = strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 || week > 53 {
		return 0, 0, errors.New("Ungültige Kalenderwoche")
	}

	return year, week, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.New("Ungültiges Datum, erwartet YYYY-MM-DD")
	}
	return date, nil
}

func optionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
