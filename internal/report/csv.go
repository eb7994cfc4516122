package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-expense-tracker/models"
)

var csvHeader = []string{"date", "amount", "title", "category"}

// WriteCSV writes a header row followed by one row per expense, in the given
// order.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCSV, err)
	}
	for _, e := range expenses {
		row := []string{e.Date, strconv.FormatInt(e.Amount, 10), e.Title, e.Category}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingCSV, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCSV, err)
	}

	return nil
}

// ExportCSV sorts the history by date, keeps the window's share of it and
// renders the attachment.
func ExportCSV(expenses []models.Expense, window models.ExportWindow) (models.CSVFile, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, Window(expenses, window.Limit())); err != nil {
		return models.CSVFile{}, err
	}

	return models.CSVFile{
		Filename: window.Filename(),
		Content:  buf.Bytes(),
	}, nil
}
