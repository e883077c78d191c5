package plangen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedError indicates the model's output could not be turned into a
// valid plan. It is never retried automatically; callers surface it with the
// raw text attached for diagnostics.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed plan response: %s", e.Reason)
}

// Parse extracts the plan array from a raw model response. Models sometimes
// wrap the JSON in prose ("Sure! Here is your plan: [...] Good luck!"), so
// the greedy span from the first '[' to the last ']' is decoded rather than
// the whole response. Returns MalformedError and no partial result on any
// failure.
func Parse(raw string) ([]Milestone, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, &MalformedError{Reason: "no JSON array found in response"}
	}

	var milestones []Milestone
	if err := json.Unmarshal([]byte(raw[start:end+1]), &milestones); err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if err := validate(milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

func validate(milestones []Milestone) error {
	if len(milestones) == 0 {
		return &MalformedError{Reason: "empty milestone array"}
	}
	if len(milestones) > MaxMilestones {
		return &MalformedError{Reason: fmt.Sprintf("%d milestones exceeds the maximum of %d", len(milestones), MaxMilestones)}
	}
	for i, m := range milestones {
		if strings.TrimSpace(m.Title) == "" {
			return &MalformedError{Reason: fmt.Sprintf("milestone %d has no title", i+1)}
		}
		if len(m.Tasks) == 0 {
			return &MalformedError{Reason: fmt.Sprintf("milestone %q has no tasks", m.Title)}
		}
		for j, t := range m.Tasks {
			if t.Day <= 0 {
				return &MalformedError{Reason: fmt.Sprintf("milestone %q task %d has invalid day %d", m.Title, j+1, t.Day)}
			}
			if strings.TrimSpace(t.Description) == "" {
				return &MalformedError{Reason: fmt.Sprintf("milestone %q task %d has no description", m.Title, j+1)}
			}
		}
	}
	return nil
}
