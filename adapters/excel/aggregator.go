package excel

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"trekadmin/domain/trek"
	"trekadmin/internal/errors"
)

// Aggregate reduces an ordered sequence of normalized rows into a
// single trek document. Trek-level fields come unconditionally from
// the first row of the whole sequence: uploaders repeat them on every
// row and row 0 is trusted as authoritative. Rows group by batch
// number in first-appearance order, and within a group the first row
// supplies every batch-level field, including the itinerary string.
// Sibling rows in the same group are consulted for nothing.
func Aggregate(rows []trek.NormalizedRow) (*trek.Document, error) {
	if len(rows) == 0 {
		return nil, errors.EmptyInput("no data rows found in spreadsheet")
	}

	first := rows[0]
	doc := &trek.Document{
		Name:           first.TrekName,
		Location:       first.Location,
		Difficulty:     first.Difficulty,
		Category:       first.Category,
		FitnessLevel:   first.FitnessLevel,
		Description:    first.Description,
		Highlights:     SplitPipeDelimited(first.Highlights),
		ThingsToCarry:  SplitPipeDelimited(first.ThingsToCarry),
		ImportantNotes: SplitPipeDelimited(first.ImportantNotes),
	}

	// Single pass, insert-if-absent: batch order is first-appearance
	// order in the file, not numeric order.
	var batchOrder []int
	firstRowOfBatch := make(map[int]trek.NormalizedRow)
	for _, row := range rows {
		if _, seen := firstRowOfBatch[row.BatchNumber]; !seen {
			firstRowOfBatch[row.BatchNumber] = row
			batchOrder = append(batchOrder, row.BatchNumber)
		}
	}

	for _, batchNumber := range batchOrder {
		row := firstRowOfBatch[batchNumber]
		doc.Batches = append(doc.Batches, trek.Batch{
			StartDate:       FormatDate(row.StartDate),
			EndDate:         FormatDate(row.EndDate),
			AvailableSlots:  row.AvailableSlots,
			Price:           row.Price,
			MinAge:          row.MinAge,
			MaxAge:          row.MaxAge,
			Duration:        row.Duration,
			MinParticipants: row.MinParticipants,
			MaxParticipants: row.MaxParticipants,
			BatchStatus:     row.BatchStatus,
			Inclusions:      SplitPipeDelimited(row.Inclusions),
			Exclusions:      SplitPipeDelimited(row.Exclusions),
			ItineraryDays:   ParseItinerary(row.Itinerary),
		})
	}

	return doc, nil
}

// SplitPipeDelimited splits a raw cell on the literal `|` delimiter,
// trimming each segment and dropping empties. A blank or
// all-whitespace source yields a single empty string: callers rely on
// there always being at least one entry so forms render at least one
// input row.
func SplitPipeDelimited(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{""}
	}

	var items []string
	for _, item := range strings.Split(value, "|") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return []string{""}
	}
	return items
}

// spreadsheetEpoch is the day-zero of spreadsheet serial dates.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// fallbackDateLayouts are tried in order when a date is neither a
// serial number nor a delimited triplet.
var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 January 2006",
}

// FormatDate normalizes a raw date cell to YYYY-MM-DD. Three input
// forms are handled, in this precedence:
//
//  1. A string that parses entirely as a number is a spreadsheet
//     serial date counted in days from 1899-12-30.
//  2. A slash- or dash-delimited triplet of numeric segments: a
//     4-digit first segment means the value is already YYYY-MM-DD and
//     passes through unchanged; otherwise DD/MM/YYYY is assumed and
//     re-emitted.
//  3. Anything else gets a generic layout parse.
//
// Unrecognized input is returned unchanged, never empty and never an
// error, so an odd cell degrades to itself rather than aborting the
// upload.
func FormatDate(dateString string) string {
	if dateString == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(strings.TrimSpace(dateString), 64); err == nil {
		date := spreadsheetEpoch.Add(time.Duration(serial * 86400000 * float64(time.Millisecond)))
		return date.Format("2006-01-02")
	}

	if strings.ContainsAny(dateString, "/-") {
		parts := strings.FieldsFunc(dateString, func(r rune) bool {
			return r == '/' || r == '-'
		})
		if len(parts) == 3 && allDigits(parts) {
			if len(parts[0]) == 4 {
				// Already YYYY-MM-DD
				return dateString
			}
			return fmt.Sprintf("%s-%s-%s", parts[2], zeroPad2(parts[1]), zeroPad2(parts[0]))
		}
	}

	for _, layout := range fallbackDateLayouts {
		if date, err := time.Parse(layout, dateString); err == nil {
			return date.Format("2006-01-02")
		}
	}

	return dateString
}

// allDigits reports whether every segment is non-empty and numeric.
// A triplet is only treated as a date when this holds; hyphenated
// words fall through to the layout parse instead of being reordered.
func allDigits(parts []string) bool {
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// zeroPad2 left-pads a day or month segment to two digits
func zeroPad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// ParseItinerary decodes the embedded itinerary JSON of a batch row.
// A JSON object (rather than an array) is wrapped in a single-element
// sequence. Itinerary is best-effort only: parse failures log a
// warning and yield an empty sequence, never an error.
func ParseItinerary(itineraryString string) []trek.ItineraryDay {
	trimmed := strings.TrimSpace(itineraryString)
	if trimmed == "" {
		return []trek.ItineraryDay{}
	}

	var days []trek.ItineraryDay
	if err := json.Unmarshal([]byte(trimmed), &days); err == nil {
		return days
	}

	var single trek.ItineraryDay
	if err := json.Unmarshal([]byte(trimmed), &single); err == nil {
		return []trek.ItineraryDay{single}
	}

	log.Printf("[ParseItinerary] could not parse itinerary JSON, skipping: %.60s", trimmed)
	return []trek.ItineraryDay{}
}
