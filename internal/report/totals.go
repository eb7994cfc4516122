package report

import (
	"sort"

	"github.com/MKhiriev/go-expense-tracker/models"
)

// Window returns the last n expenses of the date-sorted history, or all of
// them when n <= 0.
func Window(expenses []models.Expense, n int) []models.Expense {
	return models.Last(models.SortByDate(expenses), n)
}

// DailyTotals groups the last window expenses (by date) per date and sums
// their amounts. The result is ordered by total descending; equal totals keep
// the order in which their date first appeared.
func DailyTotals(expenses []models.Expense, window int) []models.DailyTotal {
	recent := Window(expenses, window)

	index := make(map[string]int, len(recent))
	totals := make([]models.DailyTotal, 0, len(recent))
	for _, e := range recent {
		i, ok := index[e.Date]
		if !ok {
			i = len(totals)
			index[e.Date] = i
			totals = append(totals, models.DailyTotal{Date: e.Date})
		}
		totals[i].Total += e.Amount
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	return totals
}
