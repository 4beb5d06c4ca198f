package services

import (
	"bytes"
	"fmt"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// SheetService renders the printable schedule sheet PDF for one trip
// schedule.
type SheetService struct {
	ScheduleRepo repositories.TripScheduleRepository
	RequestID    string
	Loader       func(int64) (models.TripScheduleDetail, error)
}

func (s SheetService) GenerateSheet(scheduleID int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.ScheduleRepo.GetDetail
	}
	det, err := load(scheduleID)
	if err != nil {
		return nil, "", storeError(err)
	}
	utils.LogEvent(s.RequestID, "sheet", "generate", fmt.Sprintf("schedule_id=%d", scheduleID))
	return buildScheduleSheetPDF(det)
}

func buildScheduleSheetPDF(d models.TripScheduleDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Schedule Sheet", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP SCHEDULE SHEET")
	pdf.Ln(12)

	recurrence := d.RecurrenceType
	if d.RecurrenceDays != "" {
		recurrence = fmt.Sprintf("%s (%s)", d.RecurrenceType, d.RecurrenceDays)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Schedule     : #%d", d.ID),
		fmt.Sprintf("Route        : %s -> %s", sheetValue(d.PickupCity), sheetValue(d.DropoffCity)),
		fmt.Sprintf("Departure    : %s", sheetValue(d.DepartureTime)),
		fmt.Sprintf("Arrival      : %s", sheetValue(d.ArrivalTime)),
		fmt.Sprintf("Vehicle      : %s (%s)", sheetValue(d.VehicleNumber), sheetValue(d.VehicleType)),
		fmt.Sprintf("Driver       : %s", sheetValue(d.DriverName)),
		fmt.Sprintf("Price        : %s", utils.FormatMoney(d.Price)),
		fmt.Sprintf("Active       : %s to %s", sheetValue(d.StartDate), sheetValue(d.EndDate)),
		fmt.Sprintf("Recurrence   : %s", sheetValue(recurrence)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Generated "+utils.NowUTC().Format("2006-01-02 15:04")+" UTC.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("SCHEDULE_%d_%s.pdf", d.ID, filenamePart(d.PickupCity+"_"+d.DropoffCity))
	return buf.Bytes(), filename, nil
}

func sheetValue(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// filenamePart keeps filenames portable: letters, digits, dash, underscore.
func filenamePart(s string) string {
	var out strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		case r == ' ':
			out.WriteByte('_')
		}
	}
	if out.Len() == 0 {
		return "sheet"
	}
	return out.String()
}
