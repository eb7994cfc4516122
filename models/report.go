package models

// ExportWindow selects which slice of the date-sorted history is exported.
type ExportWindow string

const (
	ExportWeekly  ExportWindow = "1"
	ExportMonthly ExportWindow = "2"
	ExportAll     ExportWindow = ""
)

// Limit returns how many of the latest entries the window keeps, 0 meaning all.
func (w ExportWindow) Limit() int {
	switch w {
	case ExportWeekly:
		return 7
	case ExportMonthly:
		return 30
	default:
		return 0
	}
}

// Filename returns the attachment name for the window.
func (w ExportWindow) Filename() string {
	switch w {
	case ExportWeekly:
		return "weekly_expense.csv"
	case ExportMonthly:
		return "monthly_expense.csv"
	default:
		return "all_expense.csv"
	}
}

// CSVFile is a rendered export ready to be sent as an attachment.
type CSVFile struct {
	Filename string
	Content  []byte
}

// ChartWindow is how many of the latest (by date) expenses feed the chart.
const ChartWindow = 30

// DailyTotal is the summed spend of one date.
type DailyTotal struct {
	Date  string
	Total int64
}

// ChartResult reports the outcome of a chart render.
type ChartResult struct {
	// Rendered is false when there was nothing to draw.
	Rendered bool
	FileName string
}
