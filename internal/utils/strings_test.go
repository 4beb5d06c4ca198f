package utils

import "testing"

func TestSplitDayListDeduplicates(t *testing.T) {
	got := SplitDayList("Monday, Friday;monday ,,Friday")
	if len(got) != 2 || got[0] != "Monday" || got[1] != "Friday" {
		t.Fatalf("got %v", got)
	}
}

func TestJoinDayListSkipsBlanks(t *testing.T) {
	if got := JoinDayList([]string{" Monday ", "", "Friday"}); got != "Monday,Friday" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Port   Harcourt "); got != "Port Harcourt" {
		t.Fatalf("got %q", got)
	}
}
