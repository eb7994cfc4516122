package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByDate_StableAscending(t *testing.T) {
	in := []Expense{
		{Date: "2024-01-03", Title: "c"},
		{Date: "2024-01-01", Title: "a1"},
		{Date: "2024-01-02", Title: "b"},
		{Date: "2024-01-01", Title: "a2"},
	}

	got := SortByDate(in)

	titles := make([]string, 0, len(got))
	for _, e := range got {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, titles)
	assert.Equal(t, "c", in[0].Title, "input must not be reordered")
}

func TestLast(t *testing.T) {
	in := expensesN(4)

	assert.Len(t, Last(in, 2), 2)
	assert.Equal(t, "e3", Last(in, 2)[0].Title)
	assert.Len(t, Last(in, 0), 4)
	assert.Len(t, Last(in, 10), 4)
	assert.Empty(t, Last(nil, 5))
}

func TestExportWindow(t *testing.T) {
	tests := []struct {
		window   ExportWindow
		limit    int
		filename string
	}{
		{ExportWeekly, 7, "weekly_expense.csv"},
		{ExportMonthly, 30, "monthly_expense.csv"},
		{ExportAll, 0, "all_expense.csv"},
		{ExportWindow("anything"), 0, "all_expense.csv"},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			assert.Equal(t, tt.limit, tt.window.Limit())
			assert.Equal(t, tt.filename, tt.window.Filename())
		})
	}
}
