package report

import "errors"

var (
	ErrUnsupportedFormat = errors.New("export format not supported")
	ErrInvalidWeekStart  = errors.New("invalid week start date")
)
