package excel

import (
	"reflect"
	"regexp"
	"testing"

	"trekadmin/domain/trek"
	"trekadmin/internal/errors"
)

func TestAggregate_EmptyInput(t *testing.T) {
	_, err := Aggregate(nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if errors.GetCode(err) != errors.CodeEmptyInput {
		t.Errorf("expected %s, got %s", errors.CodeEmptyInput, errors.GetCode(err))
	}
}

func TestAggregate_BatchFirstAppearanceOrder(t *testing.T) {
	// Scenario: batch numbers [3, 1, 3, 2] must emit groups in the
	// order [3, 1, 2] — first appearance, not numeric order.
	rows := []trek.NormalizedRow{
		{BatchNumber: 3, Duration: "a"},
		{BatchNumber: 1, Duration: "b"},
		{BatchNumber: 3, Duration: "c"},
		{BatchNumber: 2, Duration: "d"},
	}

	doc, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if len(doc.Batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(doc.Batches))
	}
	got := []string{doc.Batches[0].Duration, doc.Batches[1].Duration, doc.Batches[2].Duration}
	want := []string{"a", "b", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected batch order %v, got %v", want, got)
	}
}

func TestAggregate_FirstRowWinsWithinGroup(t *testing.T) {
	rows := []trek.NormalizedRow{
		{BatchNumber: 1, Price: 3500, AvailableSlots: 25},
		{BatchNumber: 1, Price: 9999, AvailableSlots: 5},
	}

	doc, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if len(doc.Batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(doc.Batches))
	}
	if doc.Batches[0].Price != 3500 {
		t.Errorf("expected first row's price 3500, got %f", doc.Batches[0].Price)
	}
	if doc.Batches[0].AvailableSlots != 25 {
		t.Errorf("expected first row's slots 25, got %d", doc.Batches[0].AvailableSlots)
	}
}

func TestAggregate_TrekFieldsFromRowZero(t *testing.T) {
	// Row 0 is authoritative for trek-level fields even when it does
	// not belong to the lowest batch number.
	rows := []trek.NormalizedRow{
		{BatchNumber: 2, TrekName: "Kudremukh Trek", Highlights: "Grasslands|Sunset point"},
		{BatchNumber: 1, TrekName: "Some Other Trek", Highlights: "ignored"},
	}

	doc, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if doc.Name != "Kudremukh Trek" {
		t.Errorf("expected trek name from row 0, got %q", doc.Name)
	}
	if !reflect.DeepEqual(doc.Highlights, []string{"Grasslands", "Sunset point"}) {
		t.Errorf("expected highlights from row 0, got %v", doc.Highlights)
	}
}

func TestSplitPipeDelimited(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"A | B|C", []string{"A", "B", "C"}},
		{"", []string{""}},
		{"   ", []string{""}},
		{"| | |", []string{""}},
		{"single", []string{"single"}},
		{"trailing|", []string{"trailing"}},
	}

	for _, tc := range cases {
		got := SplitPipeDelimited(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitPipeDelimited(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestFormatDate_SerialDate(t *testing.T) {
	got := FormatDate("45000")
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(got) {
		t.Fatalf("expected YYYY-MM-DD from serial date, got %q", got)
	}
	if got < "2020-01-01" {
		t.Errorf("serial 45000 should land after 2020-01-01, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"13/02/2026", "2026-02-13"},
		{"13-02-2026", "2026-02-13"},
		{"1/3/2026", "2026-03-01"}, // day and month zero-padded
		{"2026-02-13", "2026-02-13"},
		{"2026/02/13", "2026/02/13"}, // 4-digit first segment passes through as-is
		{"Feb 13, 2026", "2026-02-13"},
		{"not-a-date", "not-a-date"}, // hyphenated words are not a triplet
		{"mid-season-2026", "mid-season-2026"},
		{"end-of-trip", "end-of-trip"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatDate(tc.input); got != tc.want {
			t.Errorf("FormatDate(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestParseItinerary_Tolerance(t *testing.T) {
	// Malformed JSON degrades to an empty itinerary, never a panic or
	// error.
	if got := ParseItinerary("{not json"); len(got) != 0 {
		t.Errorf("expected empty itinerary for malformed JSON, got %v", got)
	}
	if got := ParseItinerary(""); len(got) != 0 {
		t.Errorf("expected empty itinerary for blank cell, got %v", got)
	}

	// A lone object is wrapped in a single-element sequence
	got := ParseItinerary(`{"dayNumber":1,"title":"Base Camp"}`)
	if len(got) != 1 {
		t.Fatalf("expected single wrapped day, got %d", len(got))
	}
	if got[0].DayNumber != 1 || got[0].Title != "Base Camp" {
		t.Errorf("unexpected wrapped day: %+v", got[0])
	}
}

func TestParseItinerary_Array(t *testing.T) {
	raw := `[{"dayNumber":1,"title":"Arrival","activities":[{"activityTime":"06:00","activityText":"Departure from Bangalore"}]},{"dayNumber":2,"title":"Summit"}]`

	days := ParseItinerary(raw)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Activities[0].ActivityTime != "06:00" {
		t.Errorf("unexpected activity time: %q", days[0].Activities[0].ActivityTime)
	}
	if days[1].Title != "Summit" {
		t.Errorf("unexpected day 2 title: %q", days[1].Title)
	}
}
