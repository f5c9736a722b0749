package ports

import "maersk-tracker/internal/features/tracking/domain"

// PageSnapshot captures the state of the current page for fallback artifacts.
type PageSnapshot struct {
	// Title is the document title of the active page.
	Title string
	// URL is the current location of the active page.
	URL string
}

// Portal defines the interactions the batch processor performs against the
// carrier tracking portal. Implementations own the active interaction
// context (top document vs. result iframe).
type Portal interface {
	// DismissCookieConsent attempts to close the cookie consent overlay.
	// Best-effort: OutcomeNotFound is benign.
	DismissCookieConsent() domain.Outcome
	// DismissCoachMarks attempts to close the onboarding coach popup.
	// Best-effort: OutcomeNotFound is benign.
	DismissCoachMarks() domain.Outcome
	// SubmitTracking clears the tracking input, enters the identifier,
	// activates the submit control and waits for results to settle.
	SubmitTracking(identifier string) error
	// OpenResultDetail attempts to enter the result iframe and follow the
	// link whose text contains the identifier. Lookup timeouts are benign
	// and reported as OutcomeNotFound; a link that was found but could not
	// be activated is reported as OutcomeFailed.
	OpenResultDetail(identifier string) domain.Outcome
	// CapturePDF renders the active page to PDF at the given path.
	CapturePDF(path string) error
	// Snapshot reports the title and URL of the active page.
	Snapshot() PageSnapshot
	// ResetContext restores interaction to the top-level document. Safe to
	// call regardless of the current context.
	ResetContext()
}
