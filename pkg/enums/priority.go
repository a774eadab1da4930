package enums

import "fmt"

// Priority is the optional urgency a user attaches to a wishlist item.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var validPriorities = [...]Priority{
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
}

// UnrankedPriority is the rank of absent or unrecognized priorities.
const UnrankedPriority = 3

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Priority.
func (p Priority) IsValid() bool {
	for _, candidate := range validPriorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// Rank orders High < Medium < Low < anything else.
func (p Priority) Rank() int {
	for i, candidate := range validPriorities {
		if candidate == p {
			return i
		}
	}
	return UnrankedPriority
}

// ParsePriority converts raw input into a Priority.
func ParsePriority(value string) (Priority, error) {
	for _, candidate := range validPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q", value)
}
