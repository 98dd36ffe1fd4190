package excel

import (
	"encoding/json"

	"github.com/xuri/excelize/v2"

	"trekadmin/domain/trek"
	"trekadmin/internal/errors"
)

// Template kinds understood by GenerateTemplate
const (
	TemplateMulti  = "multi"
	TemplateSingle = "single"
)

// multiTemplateHeaders is the exact column set the normalizer
// recognizes, in the order the original upload sheet used. Uploaders
// edit generated templates in place, so spellings must not drift.
var multiTemplateHeaders = []string{
	"Batch Number",
	"Trek Name",
	"Location",
	"Difficulty",
	"Category",
	"Fitness Level",
	"Description",
	"Start Date",
	"End Date",
	"Available Slots",
	"Price",
	"Min Age",
	"Max Age",
	"Duration",
	"Min Participants",
	"Max Participants",
	"Batch Status",
	"Highlights",
	"Inclusions",
	"Exclusions",
	"Things to Carry",
	"Important Notes",
	"Itinerary",
}

// multiTemplateWidths are fixed column widths, index-aligned with
// multiTemplateHeaders.
var multiTemplateWidths = []float64{
	12, 20, 15, 12, 15, 15, 60, 12, 12, 15, 10, 10, 10, 18, 15, 15, 12, 60, 70, 60, 70, 70, 100,
}

// GenerateTemplate produces a downloadable example spreadsheet shaped
// exactly like the input the normalizer expects: a multi-batch example
// with three pre-filled batch rows for one trek, or a single-batch
// example. The data is a fixed sample meant only as an editable
// starting point.
func GenerateTemplate(kind string) ([]byte, error) {
	switch kind {
	case TemplateMulti:
		return generateMultiBatchTemplate()
	case TemplateSingle:
		return generateSingleBatchTemplate()
	default:
		return nil, errors.InvalidInput("unknown template kind: " + kind)
	}
}

func generateMultiBatchTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Trek Data"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	itinerary := sampleItineraryJSON()
	batches := []struct {
		number    int
		startDate string
		endDate   string
		slots     int
		price     float64
		maxPart   int
	}{
		{1, "2026-02-13", "2026-02-15", 25, 3500, 25},
		{2, "2026-03-20", "2026-03-22", 30, 3500, 30},
		{3, "2026-04-10", "2026-04-12", 20, 3800, 20},
	}

	if err := f.SetSheetRow(sheet, "A1", &multiTemplateHeaders); err != nil {
		return nil, err
	}

	for i, b := range batches {
		row := []interface{}{
			b.number,
			"Kudremukh Trek",
			"Karnataka",
			"Moderate",
			"Hill Trek",
			"Intermediate",
			"Beautiful trek through lush green forests and meadows with stunning 360° views",
			b.startDate,
			b.endDate,
			b.slots,
			b.price,
			16,
			60,
			"3 Days / 2 Nights",
			10,
			b.maxPart,
			"active",
			"360° mountain views|Grasslands|Sunset point|Wildlife spotting",
			"Transportation from Bangalore|All meals|Professional guide|Camping equipment|First aid",
			"Personal expenses|Travel insurance|Medical expenses|Extra food items",
			"Trekking shoes with good grip|Water bottle (2L)|Sunscreen|First aid kit|Warm clothes|Rain jacket|Torch|Power bank",
			"Minimum age 16 years|Medical fitness certificate required|No smoking or alcohol|Carry valid ID proof|Follow guide instructions",
			itinerary,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for i, width := range multiTemplateWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func generateSingleBatchTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Single Batch"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Trek Name",
		"Location",
		"Difficulty",
		"Category",
		"Fitness Level",
		"Description",
		"Start Date",
		"End Date",
		"Available Slots",
		"Price",
		"Min Age",
		"Max Age",
		"Duration",
		"Min Participants",
		"Max Participants",
		"Batch Status",
		"Highlights",
		"Inclusions",
		"Exclusions",
		"Things to Carry",
		"Important Notes",
		"Itinerary",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	row := []interface{}{
		"Kudremukh Trek",
		"Western Ghats,Chikkamagaluru,Karnataka",
		"Moderate",
		"Forest Trek",
		"Intermediate",
		"Kudremukh is known for its scenic views, wildlife, and rich biodiversity...",
		"2026-02-13",
		"2026-02-15",
		25,
		3500,
		16,
		60,
		"3 Days / 2 Nights",
		10,
		25,
		"active",
		"Rolling grasslands|Shola forests|Sunrise views|River crossings",
		"Accommodation|Meals|Trek Guide|Forest Permit|First Aid",
		"Transport|Personal Expenses|Insurance",
		"Trekking Shoes|Rain Jacket|Torch|Water Bottle|Extra Clothes",
		"No alcohol|Follow guide instructions|Subject to weather conditions",
		sampleItineraryJSON(),
	}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sampleItineraryJSON returns the example itinerary as the
// JSON-stringified cell format the normalizer round-trips.
func sampleItineraryJSON() string {
	days := []trek.ItineraryDay{
		{
			DayNumber: 1,
			Title:     "Bangalore to Base Camp",
			Activities: []trek.Activity{
				{ActivityTime: "06:00", ActivityText: "Departure from Bangalore"},
				{ActivityTime: "12:00", ActivityText: "Lunch break at Chikmagalur"},
				{ActivityTime: "18:00", ActivityText: "Reach base camp and check-in"},
			},
		},
		{
			DayNumber: 2,
			Title:     "Trek to Kudremukh Peak",
			Activities: []trek.Activity{
				{ActivityTime: "05:00", ActivityText: "Wake up and breakfast"},
				{ActivityTime: "06:00", ActivityText: "Start trek to peak"},
				{ActivityTime: "12:00", ActivityText: "Reach summit and lunch"},
				{ActivityTime: "16:00", ActivityText: "Descend to base camp"},
			},
		},
		{
			DayNumber: 3,
			Title:     "Return to Bangalore",
			Activities: []trek.Activity{
				{ActivityTime: "07:00", ActivityText: "Breakfast and pack up"},
				{ActivityTime: "09:00", ActivityText: "Depart for Bangalore"},
				{ActivityTime: "18:00", ActivityText: "Reach Bangalore"},
			},
		},
	}

	data, err := json.Marshal(days)
	if err != nil {
		return "[]"
	}
	return string(data)
}
