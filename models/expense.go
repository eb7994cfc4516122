package models

import (
	"sort"
	"time"
)

// DateLayout is the on-disk and on-form format of [Expense.Date].
const DateLayout = "2006-01-02"

// Expense is a single spending entry embedded in a [User] record.
type Expense struct {
	Date     string `json:"date" bson:"date"`
	Amount   int64  `json:"amount" bson:"amount"`
	Title    string `json:"title" bson:"title"`
	Category string `json:"category" bson:"category"`
}

// ParsedDate returns Date as a time.Time. Unparseable dates yield the zero time.
func (e Expense) ParsedDate() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortByDate returns a copy of expenses stably sorted by date ascending.
// Entries sharing a date keep their storage order.
func SortByDate(expenses []Expense) []Expense {
	sorted := make([]Expense, len(expenses))
	copy(sorted, expenses)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ParsedDate().Before(sorted[j].ParsedDate())
	})

	return sorted
}

// Last returns the final n entries of expenses (all of them if n <= 0 or
// n exceeds the length). The result never aliases the input.
func Last(expenses []Expense, n int) []Expense {
	if n <= 0 || n > len(expenses) {
		n = len(expenses)
	}

	out := make([]Expense, n)
	copy(out, expenses[len(expenses)-n:])
	return out
}
