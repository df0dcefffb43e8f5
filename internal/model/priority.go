package model

// Priority is one of four fixed levels, ordered from low to urgent. The
// value doubles as the display label.
type Priority string

const (
	PriorityLow    Priority = "Низкий 🟢"
	PriorityMedium Priority = "Средний 🟡"
	PriorityHigh   Priority = "Высокий 🟠"
	PriorityUrgent Priority = "Срочный 🔴"
)

// Priorities lists all levels in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// IsValid reports whether p belongs to the fixed set.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}
