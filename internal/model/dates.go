package model

import "time"

// DueDateLayout is the fixed dd.mm.yyyy format used for both input parsing
// and display.
const DueDateLayout = "02.01.2006"

// ParseDueDate parses dd.mm.yyyy text into a calendar date.
func ParseDueDate(value string) (time.Time, error) {
	return time.Parse(DueDateLayout, value)
}
