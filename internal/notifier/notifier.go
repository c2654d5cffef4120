// Package notifier pushes derived case priority and category to the external
// case system. Every failure is reported as a models.NotifierOutcome.
package notifier

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid notifier input")

// StatusError is a non-2xx answer from the case system.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("case system returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("case system returned status %d: %s", e.StatusCode, e.Body)
}

var severityLabels = map[int]string{
	4: "Critical",
	3: "High",
	2: "Medium",
	1: "Low",
}

func SeverityLabel(priority int) (string, error) {
	label, ok := severityLabels[priority]
	if !ok {
		return "", fmt.Errorf("%w: priority %d must be between 1 and 4", ErrInvalidInput, priority)
	}
	return label, nil
}

func validate(caseID string, priority int, category string) (string, error) {
	if strings.TrimSpace(caseID) == "" {
		return "", fmt.Errorf("%w: case id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(category) == "" {
		return "", fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return SeverityLabel(priority)
}
