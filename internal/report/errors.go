package report

import "errors"

var (
	ErrWritingCSV     = errors.New("error writing csv")
	ErrNothingToChart = errors.New("nothing to chart")
	ErrRenderingChart = errors.New("error rendering chart")
)
