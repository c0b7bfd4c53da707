package utility

import "time"

// ISO8601Millis is the UTC timestamp layout returned by Now, with
// millisecond precision and a literal Z.
const ISO8601Millis = "2006-01-02T15:04:05.000Z"

// Clock returns the current instant.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time { return time.Now() }

// FormatTimestamp renders t in UTC using ISO8601Millis.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISO8601Millis)
}

// Now returns the clock's current instant as an ISO-8601 string.
func (c Clock) Now() string {
	if c == nil {
		c = SystemClock
	}
	return FormatTimestamp(c())
}

// DatetimeDescription describes the current-time tool.
const DatetimeDescription = "Get the current date and time in ISO format."
