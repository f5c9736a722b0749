// Package locate implements ordered selector fallback: a prioritized list of
// lookup candidates evaluated first-success, independent of the underlying
// browser automation API.
package locate

import (
	"fmt"

	"maersk-tracker/internal/core/logger"
	"maersk-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// Element is a located page element ready for interaction.
type Element interface {
	// Clear removes any existing text from the element.
	Clear() error
	// Input types text into the element.
	Input(text string) error
	// Click activates the element with a programmatic click, bypassing
	// visibility and occlusion checks.
	Click() error
}

// Finder resolves a single selector candidate, blocking up to the
// candidate's timeout. It must return an error when the wait expires.
type Finder interface {
	// Find waits for an element matching the candidate to be present.
	Find(c domain.Candidate) (Element, error)
	// FindClickable waits for an element matching the candidate to be
	// visible and enabled.
	FindClickable(c domain.Candidate) (Element, error)
}

// ElementNotFoundError reports that every candidate for a semantic role was
// exhausted without a match.
type ElementNotFoundError struct {
	// Role names the semantic role that could not be located.
	Role string
}

// Error implements the error interface.
func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("could not find element for role %q", e.Role)
}

// FirstMatch tries each candidate in declaration order and returns the
// element resolved by the first candidate that succeeds. Individual
// candidate timeouts are swallowed; selector order is a strict preference,
// not a scored ranking. When every candidate fails the lookup fails with
// *ElementNotFoundError.
func FirstMatch(f Finder, role string, candidates []domain.Candidate) (Element, error) {
	return firstMatch(role, candidates, f.Find)
}

// FirstClickable behaves like FirstMatch but requires the element to be
// visible and enabled.
func FirstClickable(f Finder, role string, candidates []domain.Candidate) (Element, error) {
	return firstMatch(role, candidates, f.FindClickable)
}

func firstMatch(role string, candidates []domain.Candidate, find func(domain.Candidate) (Element, error)) (Element, error) {
	for _, c := range candidates {
		el, err := find(c)
		if err != nil {
			logger.Get().Debug("Selector candidate did not resolve",
				zap.String("role", role),
				zap.String("strategy", string(c.Strategy)),
				zap.String("expression", c.Expression),
			)
			continue
		}
		return el, nil
	}
	return nil, &ElementNotFoundError{Role: role}
}
