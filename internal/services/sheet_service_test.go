package services

import (
	"strings"
	"testing"

	"backoffice/internal/domain/models"
)

func TestSheetServiceGenerate(t *testing.T) {
	loader := func(id int64) (models.TripScheduleDetail, error) {
		det := models.TripScheduleDetail{
			PickupCity:    "Lagos",
			DropoffCity:   "Abuja",
			VehicleType:   "Coach",
			VehicleNumber: "LAG-204",
			DriverName:    "A. Bello",
			DepartureTime: "08:30",
			ArrivalTime:   "15:45",
		}
		det.ID = id
		det.Price = 15000
		det.StartDate = "2024-01-01"
		det.EndDate = "2024-01-07"
		det.RecurrenceType = "week"
		det.RecurrenceDays = "Monday,Friday"
		return det, nil
	}

	svc := SheetService{Loader: loader}

	pdf, filename, err := svc.GenerateSheet(11)
	if err != nil {
		t.Fatalf("GenerateSheet returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateSheet returned empty data")
	}
	if !strings.HasPrefix(filename, "SCHEDULE_11_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestFilenamePart(t *testing.T) {
	if got := filenamePart("Lagos Abuja/??"); got != "Lagos_Abuja" {
		t.Fatalf("got %q", got)
	}
	if got := filenamePart("  "); got != "sheet" {
		t.Fatalf("empty input should fall back, got %q", got)
	}
}
