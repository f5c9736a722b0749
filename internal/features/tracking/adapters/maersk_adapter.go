package adapter

import (
	"fmt"
	"os"
	"time"

	"maersk-tracker/internal/core/browser"
	"maersk-tracker/internal/core/logger"
	"maersk-tracker/internal/features/tracking/domain"
	"maersk-tracker/internal/features/tracking/locate"
	"maersk-tracker/internal/features/tracking/ports"

	"github.com/go-rod/rod"
	"go.uber.org/zap"
)

const (
	// popupWait bounds each popup selector candidate.
	popupWait = 5 * time.Second
	// popupSettle is the pause after dismissing a popup.
	popupSettle = 2 * time.Second
	// detailWait bounds the result iframe and detail link lookups.
	detailWait = 10 * time.Second
	// resultsSettle is the pause for results to render after submit and
	// again after the detail link.
	resultsSettle = 5 * time.Second
)

// cookieCandidates locates the cookie consent accept control. Order encodes
// preference: the portal's own data-test hook first, generic fallbacks last.
var cookieCandidates = []domain.Candidate{
	domain.CSS("button[data-test='coi-allow-all-button']", popupWait),
	domain.CSS("button[id*='accept']", popupWait),
	domain.CSS("button[class*='accept']", popupWait),
	domain.XPath("//button[contains(., 'Accept')]", popupWait),
	domain.XPath("//button[contains(., 'Allow')]", popupWait),
}

// coachCandidates locates the onboarding coach dismiss control.
var coachCandidates = []domain.Candidate{
	domain.CSS("button[data-test='finishButton']", popupWait),
	domain.CSS("button[class*='finish']", popupWait),
	domain.XPath("//button[contains(., 'Got it')]", popupWait),
	domain.XPath("//button[contains(., 'Close')]", popupWait),
	domain.XPath("//button[contains(., 'Skip')]", popupWait),
}

// frameCandidates locates the tracking results iframe.
var frameCandidates = []domain.Candidate{
	domain.CSS("#damco-track", detailWait),
	domain.CSS("iframe[id*='track']", detailWait),
}

func inputCandidates(timeout time.Duration) []domain.Candidate {
	return []domain.Candidate{
		domain.CSS("#formInput", timeout),
		domain.CSS("input[data-test='form-input']", timeout),
		domain.CSS("input[type='text']", timeout),
		domain.CSS("input[placeholder*='track']", timeout),
	}
}

func submitCandidates(timeout time.Duration) []domain.Candidate {
	return []domain.Candidate{
		domain.CSS("button[data-test='form-input-button']", timeout),
		domain.CSS("button[type='submit']", timeout),
		domain.XPath("//button[contains(., 'Track')]", timeout),
		domain.XPath("//button[contains(., 'Search')]", timeout),
	}
}

// MaerskAdapter drives the Maersk SCM tracking portal through a browser
// session. It owns the active interaction context: the top document by
// default, the results iframe after a successful detail lookup.
type MaerskAdapter struct {
	session *browser.Session
	active  *rod.Page
	logger  *zap.Logger
}

// NewMaerskAdapter creates a MaerskAdapter bound to a live session.
func NewMaerskAdapter(session *browser.Session) *MaerskAdapter {
	return &MaerskAdapter{
		session: session,
		active:  session.Page(),
		logger:  logger.Get(),
	}
}

// DismissCookieConsent implements ports.Portal.
func (a *MaerskAdapter) DismissCookieConsent() domain.Outcome {
	return a.dismiss("cookie_consent", cookieCandidates)
}

// DismissCoachMarks implements ports.Portal.
func (a *MaerskAdapter) DismissCoachMarks() domain.Outcome {
	return a.dismiss("coach_marks", coachCandidates)
}

// dismiss tries each candidate in order and clicks the first clickable
// match. Exhausting the list is benign: the popup may simply not be shown.
func (a *MaerskAdapter) dismiss(role string, candidates []domain.Candidate) domain.Outcome {
	el, err := locate.FirstClickable(&rodFinder{page: a.active}, role, candidates)
	if err != nil {
		a.logger.Warn("Popup not found or already handled", zap.String("role", role))
		return domain.OutcomeNotFound
	}
	if err := el.Click(); err != nil {
		a.logger.Warn("Popup dismiss click failed", zap.String("role", role), zap.Error(err))
		return domain.OutcomeFailed
	}
	a.logger.Info("Popup dismissed", zap.String("role", role))
	time.Sleep(popupSettle)
	return domain.OutcomeHandled
}

// SubmitTracking implements ports.Portal: locate the tracking input, clear
// it, enter the identifier, activate the submit control and wait for the
// results to settle.
func (a *MaerskAdapter) SubmitTracking(identifier string) error {
	finder := &rodFinder{page: a.active}
	timeout := a.session.Timeout()

	input, err := locate.FirstMatch(finder, "input", inputCandidates(timeout))
	if err != nil {
		return err
	}
	if err := input.Clear(); err != nil {
		return fmt.Errorf("failed to clear tracking input: %w", err)
	}
	if err := input.Input(identifier); err != nil {
		return fmt.Errorf("failed to enter identifier: %w", err)
	}
	a.logger.Info("Entered identifier", zap.String("identifier", identifier))

	submit, err := locate.FirstClickable(finder, "submit", submitCandidates(timeout))
	if err != nil {
		return err
	}
	if err := submit.Click(); err != nil {
		return fmt.Errorf("failed to activate submit control: %w", err)
	}
	a.logger.Info("Submitted tracking form", zap.String("identifier", identifier))

	time.Sleep(resultsSettle)
	return nil
}

// OpenResultDetail implements ports.Portal: best-effort entry into the
// results iframe followed by the link whose text contains the identifier.
// Every lookup timeout is swallowed; processing continues in whichever
// context is active. The trailing settle runs regardless of outcome.
func (a *MaerskAdapter) OpenResultDetail(identifier string) domain.Outcome {
	defer time.Sleep(resultsSettle)

	frameEl, err := a.findFrame()
	if err != nil {
		a.logger.Warn("Results iframe not found, continuing with current page")
		return domain.OutcomeNotFound
	}

	frame, err := frameEl.Frame()
	if err != nil {
		a.logger.Warn("Could not enter results iframe", zap.Error(err))
		return domain.OutcomeNotFound
	}
	a.active = frame
	a.logger.Info("Switched to results iframe")

	link, err := locate.FirstMatch(&rodFinder{page: a.active}, "detail_link",
		[]domain.Candidate{domain.Text(identifier, detailWait)})
	if err != nil {
		a.logger.Warn("Detail link not found in iframe", zap.String("identifier", identifier))
		return domain.OutcomeNotFound
	}
	if err := link.Click(); err != nil {
		a.logger.Warn("Detail link click failed", zap.Error(err))
		return domain.OutcomeFailed
	}
	a.logger.Info("Opened result detail", zap.String("identifier", identifier))
	return domain.OutcomeHandled
}

func (a *MaerskAdapter) findFrame() (*rod.Element, error) {
	var lastErr error
	for _, c := range frameCandidates {
		el, err := a.active.Timeout(c.Timeout).Element(c.Expression)
		if err != nil {
			lastErr = err
			continue
		}
		return el, nil
	}
	return nil, lastErr
}

// CapturePDF implements ports.Portal: render the active page with the fixed
// print configuration and write the bytes to path.
func (a *MaerskAdapter) CapturePDF(path string) error {
	data, err := a.session.PDF(a.active)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// Snapshot implements ports.Portal.
func (a *MaerskAdapter) Snapshot() ports.PageSnapshot {
	info, err := a.active.Info()
	if err != nil {
		return ports.PageSnapshot{}
	}
	return ports.PageSnapshot{Title: info.Title, URL: info.URL}
}

// ResetContext implements ports.Portal: restore interaction to the
// top-level document.
func (a *MaerskAdapter) ResetContext() {
	a.active = a.session.Page()
}
