package domain

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestComputeEndDateWeek(t *testing.T) {
	end, err := ComputeEndDate(mustDate(t, "2024-01-01"), RecurWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Format("2006-01-02"); got != "2024-01-07" {
		t.Fatalf("week end date got %s want 2024-01-07", got)
	}
}

func TestComputeEndDateDay(t *testing.T) {
	end, err := ComputeEndDate(mustDate(t, "2024-01-01"), RecurDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Format("2006-01-02"); got != "2024-01-01" {
		t.Fatalf("day end date got %s want 2024-01-01", got)
	}
}

func TestComputeEndDateMonthClampsOverflow(t *testing.T) {
	// Jan 31 + 1 month clamps to the end of February before the minus-one-day step.
	end, err := ComputeEndDate(mustDate(t, "2024-01-31"), RecurMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Format("2006-01-02"); got != "2024-02-28" {
		t.Fatalf("month end date got %s want 2024-02-28", got)
	}
}

func TestComputeEndDateYearClampsLeapDay(t *testing.T) {
	end, err := ComputeEndDate(mustDate(t, "2024-02-29"), RecurYear)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Format("2006-01-02"); got != "2025-02-27" {
		t.Fatalf("year end date got %s want 2025-02-27", got)
	}
}

func TestComputeEndDateAlwaysOnOrAfterStart(t *testing.T) {
	start := mustDate(t, "2023-03-15")
	for _, kind := range []RecurrenceKind{RecurDay, RecurWeek, RecurMonth, RecurYear} {
		end, err := ComputeEndDate(start, kind)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if end.Before(start) {
			t.Fatalf("%s: end %s before start %s", kind, end, start)
		}
	}
}

func TestComputeEndDateSpans(t *testing.T) {
	start := mustDate(t, "2023-03-01")
	cases := map[RecurrenceKind]string{
		RecurDay:   "2023-03-01",
		RecurWeek:  "2023-03-07",
		RecurMonth: "2023-03-31",
		RecurYear:  "2024-02-29",
	}
	for kind, want := range cases {
		end, err := ComputeEndDate(start, kind)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if got := end.Format("2006-01-02"); got != want {
			t.Fatalf("%s: got %s want %s", kind, got, want)
		}
	}
}

func TestComputeEndDateRejectsUnknownKind(t *testing.T) {
	_, err := ComputeEndDate(mustDate(t, "2024-01-01"), RecurrenceKind("fortnight"))
	if !IsUnsupportedRecurrenceKind(err) {
		t.Fatalf("expected unsupported recurrence kind error, got %v", err)
	}
}

func TestParseRecurrenceKind(t *testing.T) {
	if k, err := ParseRecurrenceKind(" Week "); err != nil || k != RecurWeek {
		t.Fatalf("expected week, got %v / %v", k, err)
	}
	if _, err := ParseRecurrenceKind("decade"); !IsUnsupportedRecurrenceKind(err) {
		t.Fatalf("expected unsupported recurrence kind error, got %v", err)
	}
}
