// Package timez provides calendar helpers, mainly the resolution of month
// names typed by humans ("jan", "Sept", "DECEMBER") into a [Month].
package timez

import "time"

// UTCDate gets the UTC date for the given year, month and day.
func UTCDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
