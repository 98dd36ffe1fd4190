package trek

// NormalizedRow is one spreadsheet row mapped to canonical fields.
// Trek-level fields repeat on every row; batch-level fields describe
// the schedule instance the row belongs to. Optional integer fields
// stay nil when the cell was absent or unparsable so "unspecified"
// remains distinguishable from zero.
type NormalizedRow struct {
	// Trek-level fields (expected identical on every row)
	TrekName       string
	Location       string
	Difficulty     string
	Category       string
	FitnessLevel   string
	Description    string
	Highlights     string // raw pipe-delimited
	ThingsToCarry  string // raw pipe-delimited
	ImportantNotes string // raw pipe-delimited

	// Batch identification
	BatchNumber int // defaults to 1, never 0

	// Batch-level fields
	StartDate       string // raw, multiple input formats
	EndDate         string
	AvailableSlots  int
	Price           float64
	MinAge          *int
	MaxAge          *int
	Duration        string
	MinParticipants *int
	MaxParticipants *int
	BatchStatus     string // defaults to "active"
	Inclusions      string // raw pipe-delimited
	Exclusions      string // raw pipe-delimited
	Itinerary       string // raw JSON string or empty
}

// Document is the aggregated output of a spreadsheet upload: one trek
// with an ordered collection of batches. It is constructed once per
// upload and never mutated afterwards.
type Document struct {
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Difficulty     string   `json:"difficulty"`
	Category       string   `json:"category"`
	FitnessLevel   string   `json:"fitnessLevel"`
	Description    string   `json:"description"`
	Highlights     []string `json:"highlights"`
	ThingsToCarry  []string `json:"thingsToCarry"`
	ImportantNotes []string `json:"importantNotes"`
	Batches        []Batch  `json:"batches"`
}

// Batch is one schedule instance of a trek: a date range plus capacity
// and price. Dates are normalized to YYYY-MM-DD.
type Batch struct {
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate"`
	AvailableSlots  int            `json:"availableSlots"`
	Price           float64        `json:"price"`
	MinAge          *int           `json:"minAge,omitempty"`
	MaxAge          *int           `json:"maxAge,omitempty"`
	Duration        string         `json:"duration"`
	MinParticipants *int           `json:"minParticipants,omitempty"`
	MaxParticipants *int           `json:"maxParticipants,omitempty"`
	BatchStatus     string         `json:"batchStatus"`
	Inclusions      []string       `json:"inclusions"`
	Exclusions      []string       `json:"exclusions"`
	ItineraryDays   []ItineraryDay `json:"itineraryDays"`
}

// ItineraryDay is one day of a batch itinerary.
type ItineraryDay struct {
	DayNumber  int        `json:"dayNumber"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Activity is a single scheduled item within an itinerary day. Times
// are free-form strings, not strictly validated.
type Activity struct {
	ActivityTime string `json:"activityTime"`
	ActivityText string `json:"activityText"`
}
