package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

const (
	nameWidth  = 50.0
	groupWidth = 30.0
	dayWidth   = 24.0
	totalWidth = 29.0
	rowHeight  = 7.0
)

// CellText renders one roster cell: the shift times for a working entry, otherwise the status label.
func CellText(entry *domain.ShiftEntry) string {
	if entry == nil {
		return ""
	}
	if entry.Status.IsWorking() && entry.StartTime != nil && entry.EndTime != nil {
		return entry.StartTime.String() + "-" + entry.EndTime.String()
	}
	return string(entry.Status)
}

// FooterLine is one row of daily totals under the roster, one cell per day.
type FooterLine struct {
	Label string
	Cells [domain.DaysPerWeek]string
}

// FooterLines renders the daily totals. A day without entries counts as zero.
func FooterLines(daily []domain.DailyTotal) []FooterLine {
	byDay := make(map[int]*domain.DailyTotal, len(daily))
	for i := range daily {
		byDay[daily[i].DayOfWeek] = &daily[i]
	}

	withInterns := FooterLine{Label: "Stunden gesamt"}
	withoutInterns := FooterLine{Label: "ohne Praktikanten"}
	staff := FooterLine{Label: "Personal (ohne Prakt.)"}
	for day := 0; day < domain.DaysPerWeek; day++ {
		var all, regular *int
		var total, counted int
		if t, ok := byDay[day]; ok {
			all, regular = &t.TotalMinutesWithInterns, &t.TotalMinutesWithoutInterns
			total, counted = t.TotalStaffCount, t.StaffCountWithoutInterns
		}
		withInterns.Cells[day] = roster.FormatOptional(all)
		withoutInterns.Cells[day] = roster.FormatOptional(regular)
		staff.Cells[day] = fmt.Sprintf("%d (%d)", total, counted)
	}
	return []FooterLine{withInterns, withoutInterns, staff}
}

// WeeklyRoster writes the roster of one week as a landscape A4 PDF: one row per staff
// member, one column per day, and the daily totals underneath.
func WeeklyRoster(w io.Writer, snapshot *roster.WeekSnapshot, daily []domain.DailyTotal, weekly []domain.WeeklyStaffTotal) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("Dienstplan KW %d/%d", snapshot.Week.WeekNumber, snapshot.Week.Year)), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	title := fmt.Sprintf("Dienstplan KW %d/%d (%s - %s)",
		snapshot.Week.WeekNumber,
		snapshot.Week.Year,
		snapshot.Week.StartDate.Format("02.01.2006"),
		snapshot.Week.EndDate.Format("02.01.2006"),
	)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	// header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(nameWidth, rowHeight, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(groupWidth, rowHeight, "Gruppe", "1", 0, "L", true, 0, "")
	for day := 0; day < domain.DaysPerWeek; day++ {
		header := fmt.Sprintf("%s %s", roster.DayName(day)[:2], snapshot.Week.DayDate(day).Format("02.01."))
		pdf.CellFormat(dayWidth, rowHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(totalWidth, rowHeight, "Summe", "1", 1, "C", true, 0, "")

	cells := make(map[int64][domain.DaysPerWeek]*domain.ShiftEntry)
	for i := range snapshot.Entries {
		entry := &snapshot.Entries[i]
		if entry.DayOfWeek < 0 || entry.DayOfWeek >= domain.DaysPerWeek {
			continue
		}
		row := cells[entry.StaffID]
		row[entry.DayOfWeek] = entry
		cells[entry.StaffID] = row
	}

	pdf.SetFont("Arial", "", 8)
	for _, total := range weekly {
		pdf.CellFormat(nameWidth, rowHeight, tr(total.FullName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(groupWidth, rowHeight, tr(total.GroupName), "1", 0, "L", false, 0, "")
		row := cells[total.StaffID]
		for day := 0; day < domain.DaysPerWeek; day++ {
			pdf.CellFormat(dayWidth, rowHeight, tr(CellText(row[day])), "1", 0, "C", false, 0, "")
		}
		pdf.CellFormat(totalWidth, rowHeight, total.TotalHoursFormatted, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 8)
	for _, line := range FooterLines(daily) {
		pdf.CellFormat(nameWidth+groupWidth, rowHeight, tr(line.Label), "1", 0, "L", true, 0, "")
		for _, text := range line.Cells {
			pdf.CellFormat(dayWidth, rowHeight, text, "1", 0, "C", true, 0, "")
		}
		pdf.CellFormat(totalWidth, rowHeight, "", "1", 1, "C", true, 0, "")
	}

	if snapshot.Week.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, tr(snapshot.Week.Notes), "", "", false)
	}

	return pdf.Output(w)
}
