// Package duedate classifies loan due dates against the current day.
package duedate

import (
	"fmt"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
)

// DueSoonWindow is the number of days ahead that counts as due soon.
const DueSoonWindow = 7

type Level int

const (
	Current Level = iota
	DueSoon
	Overdue
)

func (l Level) String() string {
	switch l {
	case Current:
		return "current"
	case DueSoon:
		return "due-soon"
	case Overdue:
		return "overdue"
	}
	return "unknown"
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

type Classification struct {
	Level Level `json:"level"`
	// Days is days overdue for Overdue and days remaining for DueSoon.
	Days int `json:"days"`
}

func (c Classification) Overdue() bool { return c.Level == Overdue }

func (c Classification) DueToday() bool { return c.Level == DueSoon && c.Days == 0 }

func (c Classification) String() string {
	switch c.Level {
	case Overdue:
		return fmt.Sprintf("overdue by %d %s", c.Days, plural(c.Days))
	case DueSoon:
		if c.Days == 0 {
			return "due today"
		}
		return fmt.Sprintf("%d %s remaining", c.Days, plural(c.Days))
	case Current:
		return "on schedule"
	}
	return ""
}

func plural(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// Classify compares calendar dates; time of day is ignored.
func Classify(due, now time.Time) Classification {
	diff := DaysBetween(now, due)
	switch {
	case diff < 0:
		return Classification{Level: Overdue, Days: -diff}
	case diff <= DueSoonWindow:
		return Classification{Level: DueSoon, Days: diff}
	default:
		return Classification{Level: Current}
	}
}

// DaysBetween returns the whole calendar days from a to b. Each time is
// reduced to the calendar date of its own location.
func DaysBetween(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// ClassifyLoan returns false for returned loans.
func ClassifyLoan(l model.Loan, now time.Time) (Classification, bool) {
	if !l.Active() {
		return Classification{}, false
	}
	return Classify(l.DueDate.Time, now), true
}

func IsOverdue(l model.Loan, now time.Time) bool {
	c, ok := ClassifyLoan(l, now)
	return ok && c.Overdue()
}
