package excel

import (
	"reflect"
	"testing"
)

func TestNormalizeRow_EmptyRowDefaults(t *testing.T) {
	// Scenario: a row of completely empty cells still normalizes, with
	// every field at its documented default.
	row := RawRow{
		"Trek Name": "", "Location": "", "Batch Number": "",
		"Available Slots": "", "Price": "", "Batch Status": "",
		"Min Age": "", "Max Participants": "",
	}

	normalized := NormalizeRow(row)

	if normalized.BatchNumber != 1 {
		t.Errorf("expected batchNumber default 1, got %d", normalized.BatchNumber)
	}
	if normalized.AvailableSlots != 0 {
		t.Errorf("expected availableSlots 0, got %d", normalized.AvailableSlots)
	}
	if normalized.Price != 0 {
		t.Errorf("expected price 0, got %f", normalized.Price)
	}
	if normalized.BatchStatus != "active" {
		t.Errorf("expected batchStatus %q, got %q", "active", normalized.BatchStatus)
	}
	if normalized.TrekName != "" || normalized.Location != "" {
		t.Errorf("expected empty-string scalars, got %q / %q", normalized.TrekName, normalized.Location)
	}
	if normalized.MinAge != nil || normalized.MaxParticipants != nil {
		t.Error("expected optional fields to stay nil on empty input")
	}

	// Normalization is pure: a second run yields identical output
	again := NormalizeRow(row)
	if !reflect.DeepEqual(normalized, again) {
		t.Error("expected identical output on repeated normalization")
	}
}

func TestNormalizeRow_FriendlyHeaderWinsOverFallback(t *testing.T) {
	row := RawRow{
		"Trek Name": "Kudremukh Trek",
		"trekName":  "should be ignored",
		"location":  "Karnataka", // only the camelCase spelling present
	}

	normalized := NormalizeRow(row)

	if normalized.TrekName != "Kudremukh Trek" {
		t.Errorf("expected friendly header to win, got %q", normalized.TrekName)
	}
	if normalized.Location != "Karnataka" {
		t.Errorf("expected camelCase fallback to resolve, got %q", normalized.Location)
	}
}

func TestNormalizeRow_LeadingNumericPrefix(t *testing.T) {
	row := RawRow{
		"Available Slots": "25 slots",
		"Price":           "3500.50 INR",
		"Min Age":         "16+",
		"Max Age":         "sixty",
	}

	normalized := NormalizeRow(row)

	if normalized.AvailableSlots != 25 {
		t.Errorf("expected 25, got %d", normalized.AvailableSlots)
	}
	if normalized.Price != 3500.5 {
		t.Errorf("expected 3500.5, got %f", normalized.Price)
	}
	if normalized.MinAge == nil || *normalized.MinAge != 16 {
		t.Errorf("expected minAge 16, got %v", normalized.MinAge)
	}
	if normalized.MaxAge != nil {
		t.Errorf("expected non-numeric maxAge to stay nil, got %v", normalized.MaxAge)
	}
}

func TestNormalizeRow_BatchNumberAlwaysUsable(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  int
	}{
		{"numeric", "3", 3},
		{"empty", "", 1},
		{"non-numeric", "first", 1},
		{"zero collapses to one", "0", 1},
		{"trailing text", "2nd batch", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			normalized := NormalizeRow(RawRow{"Batch Number": tc.value})
			if normalized.BatchNumber != tc.want {
				t.Errorf("batch number %q: expected %d, got %d", tc.value, tc.want, normalized.BatchNumber)
			}
		})
	}
}

func TestNormalizeRow_ZeroIsNotUnspecified(t *testing.T) {
	// An explicit 0 in an optional field is a value, not an absent cell.
	normalized := NormalizeRow(RawRow{"Min Participants": "0"})
	if normalized.MinParticipants == nil || *normalized.MinParticipants != 0 {
		t.Errorf("expected explicit zero to survive, got %v", normalized.MinParticipants)
	}
}
