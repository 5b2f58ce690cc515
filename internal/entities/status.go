package entities

import "fmt"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var statusTransitions = map[Status][]Status{
	StatusDraft:   {StatusStarted, StatusCancelled},
	StatusStarted: {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusStarted, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Editable reports whether items, tractor and discounts may change.
func (s Status) Editable() bool {
	return s == StatusDraft
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, st := range statusTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}
