package excel

import (
	"strconv"
	"strings"

	"trekadmin/domain/trek"
)

// Header candidates per canonical field. The friendly spreadsheet
// spelling is checked first, then the camelCase fallback. Uploaders
// depend on these exact strings; the generated templates use the
// friendly form.
var (
	headerTrekName        = []string{"Trek Name", "trekName"}
	headerLocation        = []string{"Location", "location"}
	headerDifficulty      = []string{"Difficulty", "difficulty"}
	headerCategory        = []string{"Category", "category"}
	headerFitnessLevel    = []string{"Fitness Level", "fitnessLevel"}
	headerDescription     = []string{"Description", "description"}
	headerHighlights      = []string{"Highlights", "highlights"}
	headerThingsToCarry   = []string{"Things to Carry", "thingsToCarry"}
	headerImportantNotes  = []string{"Important Notes", "importantNotes"}
	headerBatchNumber     = []string{"Batch Number", "batchNumber"}
	headerStartDate       = []string{"Start Date", "startDate"}
	headerEndDate         = []string{"End Date", "endDate"}
	headerAvailableSlots  = []string{"Available Slots", "availableSlots"}
	headerPrice           = []string{"Price", "price"}
	headerMinAge          = []string{"Min Age", "minAge"}
	headerMaxAge          = []string{"Max Age", "maxAge"}
	headerDuration        = []string{"Duration", "duration"}
	headerMinParticipants = []string{"Min Participants", "minParticipants"}
	headerMaxParticipants = []string{"Max Participants", "maxParticipants"}
	headerBatchStatus     = []string{"Batch Status", "batchStatus"}
	headerInclusions      = []string{"Inclusions", "inclusions"}
	headerExclusions      = []string{"Exclusions", "exclusions"}
	headerItinerary       = []string{"Itinerary", "itinerary"}
)

// NormalizeRow maps a raw row to canonical fields with type coercion
// and default policies. It is pure and has no failure path: coercion
// failures degrade to defaults, and no row is ever rejected. Whether a
// batch group is usable is the aggregator's call, not this one's.
func NormalizeRow(row RawRow) trek.NormalizedRow {
	return trek.NormalizedRow{
		TrekName:       pickString(row, headerTrekName),
		Location:       pickString(row, headerLocation),
		Difficulty:     pickString(row, headerDifficulty),
		Category:       pickString(row, headerCategory),
		FitnessLevel:   pickString(row, headerFitnessLevel),
		Description:    pickString(row, headerDescription),
		Highlights:     pickString(row, headerHighlights),
		ThingsToCarry:  pickString(row, headerThingsToCarry),
		ImportantNotes: pickString(row, headerImportantNotes),

		BatchNumber: pickBatchNumber(row),

		StartDate:       pickString(row, headerStartDate),
		EndDate:         pickString(row, headerEndDate),
		AvailableSlots:  pickInt(row, headerAvailableSlots),
		Price:           pickFloat(row, headerPrice),
		MinAge:          pickOptionalInt(row, headerMinAge),
		MaxAge:          pickOptionalInt(row, headerMaxAge),
		Duration:        pickString(row, headerDuration),
		MinParticipants: pickOptionalInt(row, headerMinParticipants),
		MaxParticipants: pickOptionalInt(row, headerMaxParticipants),
		BatchStatus:     pickStringOrDefault(row, headerBatchStatus, "active"),
		Inclusions:      pickString(row, headerInclusions),
		Exclusions:      pickString(row, headerExclusions),
		Itinerary:       pickString(row, headerItinerary),
	}
}

// pickString resolves the first candidate header with a non-empty value
func pickString(row RawRow, candidates []string) string {
	for _, key := range candidates {
		if value := row[key]; value != "" {
			return value
		}
	}
	return ""
}

func pickStringOrDefault(row RawRow, candidates []string, defaultValue string) string {
	if value := pickString(row, candidates); value != "" {
		return value
	}
	return defaultValue
}

// pickInt coerces to an integer, yielding 0 on empty or non-numeric input
func pickInt(row RawRow, candidates []string) int {
	value, ok := parseLeadingInt(pickString(row, candidates))
	if !ok {
		return 0
	}
	return value
}

// pickOptionalInt coerces to an integer but keeps "unspecified"
// distinguishable from zero: absent or unparsable cells yield nil.
func pickOptionalInt(row RawRow, candidates []string) *int {
	value, ok := parseLeadingInt(pickString(row, candidates))
	if !ok {
		return nil
	}
	return &value
}

// pickFloat coerces to a float, yielding 0 on empty or non-numeric input
func pickFloat(row RawRow, candidates []string) float64 {
	value, ok := parseLeadingFloat(pickString(row, candidates))
	if !ok {
		return 0
	}
	return value
}

// pickBatchNumber always resolves to a usable group key: absent,
// unparsable, or zero values all collapse to batch 1.
func pickBatchNumber(row RawRow) int {
	value, ok := parseLeadingInt(pickString(row, headerBatchNumber))
	if !ok || value == 0 {
		return 1
	}
	return value
}

// parseLeadingInt parses the leading integer prefix of a string, the
// way spreadsheet uploads are usually forgiving about trailing units
// ("25 slots" reads as 25). Returns false when no digits lead.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return value, true
}

// parseLeadingFloat parses the leading numeric prefix of a string,
// accepting an optional fraction ("3500.50 INR" reads as 3500.5).
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
