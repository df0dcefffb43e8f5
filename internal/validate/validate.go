// Package validate holds the stateless input checks used by the prompt
// layer before it calls into the services. The store itself trusts its
// callers and does not repeat these checks.
package validate

import (
	"strconv"
	"strings"

	"task-manager/internal/model"
)

// Title reports whether the title is non-blank after trimming.
func Title(title string) bool {
	return strings.TrimSpace(title) != ""
}

// DueDate reports whether the text parses as dd.mm.yyyy.
func DueDate(value string) bool {
	_, err := model.ParseDueDate(value)
	return err == nil
}

// Priority reports whether the value belongs to the fixed priority set.
func Priority(priority model.Priority) bool {
	return priority.IsValid()
}

// Category reports whether the value belongs to the fixed category set.
func Category(category model.Category) bool {
	return category.IsValid()
}

// MenuChoice parses a numeric menu selection and checks it against the
// inclusive [min, max] range.
func MenuChoice(input string, min, max int) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < min || choice > max {
		return 0, false
	}
	return choice, true
}

// TaskID parses a positive numeric task id.
func TaskID(input string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
