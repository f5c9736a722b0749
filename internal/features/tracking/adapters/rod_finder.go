package adapter

import (
	"fmt"
	"regexp"

	"maersk-tracker/internal/features/tracking/domain"
	"maersk-tracker/internal/features/tracking/locate"

	"github.com/go-rod/rod"
)

// rodFinder resolves selector candidates against a rod page. Each lookup is
// bounded by the candidate's own timeout.
type rodFinder struct {
	page *rod.Page
}

// Find implements locate.Finder.
func (f *rodFinder) Find(c domain.Candidate) (locate.Element, error) {
	el, err := f.resolve(c)
	if err != nil {
		return nil, err
	}
	return &rodElement{el: el}, nil
}

// FindClickable implements locate.Finder.
func (f *rodFinder) FindClickable(c domain.Candidate) (locate.Element, error) {
	el, err := f.resolve(c)
	if err != nil {
		return nil, err
	}
	if err := el.WaitVisible(); err != nil {
		return nil, err
	}
	if err := el.WaitEnabled(); err != nil {
		return nil, err
	}
	return &rodElement{el: el}, nil
}

func (f *rodFinder) resolve(c domain.Candidate) (*rod.Element, error) {
	p := f.page.Timeout(c.Timeout)

	switch c.Strategy {
	case domain.StrategyCSS:
		return p.Element(c.Expression)
	case domain.StrategyXPath:
		return p.ElementX(c.Expression)
	case domain.StrategyText:
		return p.ElementR("a", regexp.QuoteMeta(c.Expression))
	default:
		return nil, fmt.Errorf("unknown selector strategy %q", c.Strategy)
	}
}

// rodElement adapts *rod.Element to the locate.Element interaction surface.
type rodElement struct {
	el *rod.Element
}

// Clear selects any existing text so the next Input replaces it.
func (e *rodElement) Clear() error {
	return e.el.SelectAllText()
}

// Input types text into the element, replacing the current selection.
func (e *rodElement) Input(text string) error {
	return e.el.Input(text)
}

// Click dispatches a programmatic click in page context. This bypasses
// rod's visibility and occlusion checks so overlapping overlays cannot
// block the activation.
func (e *rodElement) Click() error {
	_, err := e.el.Eval(`() => this.click()`)
	return err
}
