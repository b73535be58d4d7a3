package entity

import "strings"

// Priority is the task priority level.
type Priority string

const (
	PriorityUrgent Priority = "Urgent"
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority resolves a priority from user input, case-insensitively.
// Empty input falls back to Low.
func ParsePriority(raw string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return PriorityLow, true
	case "urgent":
		return PriorityUrgent, true
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	default:
		return "", false
	}
}
