package dto

import "time"

// DateLayout is the calendar-date wire format used for every createdAt field.
const DateLayout = "2006-01-02"

// FormatDate renders t as a calendar date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
