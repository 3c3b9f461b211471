package queries

import (
	"errors"
	"time"

	"hotelpos/internal/pkg/errs"
)

// DefaultReportDays is how far back a report reaches when no start date is given.
const DefaultReportDays = 30

var ErrReportPeriodIsInverted = errors.New("report end date is before its start date")

// ReportPeriod is an inclusive range of calendar days in the report time zone.
// Both dates are midnight of their day.
type ReportPeriod struct {
	StartDate time.Time
	EndDate   time.Time
}

// resolvePeriod fills the missing ends of a requested range: the end
// defaults to today and the start to DefaultReportDays before the end.
// Only the calendar date of start and end is used.
func resolvePeriod(start, end *time.Time, now time.Time, loc *time.Location) (ReportPeriod, error) {
	p := ReportPeriod{EndDate: midnight(now.In(loc), loc)}
	if end != nil {
		p.EndDate = midnight(*end, loc)
	}

	p.StartDate = p.EndDate.AddDate(0, 0, -DefaultReportDays)
	if start != nil {
		p.StartDate = midnight(*start, loc)
	}

	if p.EndDate.Before(p.StartDate) {
		return ReportPeriod{}, errs.NewValueIsInvalidErrorWithCause("period", ErrReportPeriodIsInverted)
	}
	return p, nil
}

// bounds returns the half-open instant range [from, to) covering the period.
func (p ReportPeriod) bounds() (time.Time, time.Time) {
	return p.StartDate, p.EndDate.AddDate(0, 0, 1)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
