// Package report renders the expense history into its two exported forms:
// a CSV attachment and a bar chart image of daily spend.
//
// Both renderers are pure: they take the stored history and return bytes.
// Persisting the chart is left to the caller.
package report
