package timez

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adobaai/drills/encodingz/jsonz"
)

// Month is a month of the year, numbered in calendar order.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

type monthInfo struct {
	name string
	days int // In a non-leap year
}

var months = [...]monthInfo{
	January:   {"January", 31},
	February:  {"February", 28},
	March:     {"March", 31},
	April:     {"April", 30},
	May:       {"May", 31},
	June:      {"June", 30},
	July:      {"July", 31},
	August:    {"August", 31},
	September: {"September", 30},
	October:   {"October", 31},
	November:  {"November", 30},
	December:  {"December", 31},
}

// Months returns all the months in calendar order.
func Months() []Month {
	res := make([]Month, 0, int(December))
	for m := January; m <= December; m++ {
		res = append(res, m)
	}
	return res
}

// Valid reports whether m is one of January..December.
func (m Month) Valid() bool {
	return January <= m && m <= December
}

// String returns the English name of the month ("January", ...).
func (m Month) String() string {
	if m.Valid() {
		return months[m].name
	}
	return fmt.Sprintf("Month(%d)", int(m))
}

// Days returns the number of days of the month.
// February always has 28 days, use [Month.DaysIn] for leap years.
func (m Month) Days() int {
	if m.Valid() {
		return months[m].days
	}
	return 0
}

// DaysIn returns the number of days of the month in the given year.
func (m Month) DaysIn(year int) int {
	if !m.Valid() {
		return 0
	}
	// Day 0 of the next month is the last day of this one.
	return UTCDate(year, int(m)+1, 0).Day()
}

// Std converts m to a [time.Month].
func (m Month) Std() time.Month {
	return time.Month(m)
}

// MarshalJSON encodes the month as its name.
func (m Month) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid month: %d", int(m))
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a month name or an unambiguous prefix of it.
// A JSON null is reported as [ErrNullInput].
func (m *Month) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return ErrNullInput
	}
	length := len(b)
	if length < 2 || b[0] != '"' || b[length-1] != '"' {
		return fmt.Errorf("invalid token: %s", b)
	}
	s, err := jsonz.Unmarshal[string](b)
	if err != nil {
		return err
	}
	res, err := Resolve(*s)
	if err != nil {
		return err
	}
	*m = res
	return nil
}
