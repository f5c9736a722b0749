package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"maersk-tracker/internal/core/logger"
	"maersk-tracker/internal/features/tracking/domain"
	"maersk-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// Processor runs the per-identifier submission sequence against a portal and
// accounts for one ProcessingResult per identifier.
//
// Policy note: when PDF rendering fails the processor substitutes a
// lower-fidelity text artifact and still records the item as a success; only
// the artifact type differs. Consumers of the summary reports should be
// aware the success rate includes text fallbacks.
type Processor struct {
	portal     ports.Portal
	resultsDir string
	pdfDir     string
	itemDelay  time.Duration
	logger     *zap.Logger
}

// NewProcessor creates a Processor writing artifacts under resultsDir (text
// fallbacks) and pdfDir (PDFs), pausing itemDelay between identifiers.
func NewProcessor(portal ports.Portal, resultsDir, pdfDir string, itemDelay time.Duration) *Processor {
	return &Processor{
		portal:     portal,
		resultsDir: resultsDir,
		pdfDir:     pdfDir,
		itemDelay:  itemDelay,
		logger:     logger.Get(),
	}
}

// Run processes every identifier in order, strictly sequentially, with a
// fixed pause after each item. Individual failures never stop the batch; the
// returned BatchRun holds exactly one result per input identifier in input
// order.
func (p *Processor) Run(identifiers []string) domain.BatchRun {
	var run domain.BatchRun

	for i, id := range identifiers {
		p.logger.Info("Processing identifier",
			zap.Int("position", i+1),
			zap.Int("total", len(identifiers)),
			zap.String("identifier", id),
		)

		result := p.processOne(i+1, id)
		run.Results = append(run.Results, result)

		if result.Status == domain.StatusSuccess {
			p.logger.Info("Identifier processed",
				zap.String("identifier", id),
				zap.String("artifact", result.Artifact),
			)
		} else {
			p.logger.Error("Identifier failed",
				zap.String("identifier", id),
				zap.String("error", result.Error),
			)
		}

		time.Sleep(p.itemDelay)
	}

	return run
}

// processOne executes the submission sequence for a single identifier. A
// missing result detail is benign and falls through to capturing whatever
// page is active; a detail interaction that was found but could not be
// completed marks the item as an error. The interaction context is always
// reset to the top document before returning, so a failure mid-navigation
// cannot corrupt the next item's starting state.
func (p *Processor) processOne(index int, identifier string) domain.ProcessingResult {
	defer p.portal.ResetContext()

	if err := p.portal.SubmitTracking(identifier); err != nil {
		return errorResult(identifier, err)
	}

	switch p.portal.OpenResultDetail(identifier) {
	case domain.OutcomeNotFound:
		p.logger.Warn("Result detail not found, capturing current page",
			zap.String("identifier", identifier),
		)
	case domain.OutcomeFailed:
		return errorResult(identifier, fmt.Errorf("result detail interaction failed for %s", identifier))
	}

	artifact := fmt.Sprintf("%03d_%s_tracking.pdf", index, identifier)
	if err := p.portal.CapturePDF(filepath.Join(p.pdfDir, artifact)); err != nil {
		p.logger.Error("PDF rendering failed, writing text fallback",
			zap.String("identifier", identifier),
			zap.Error(err),
		)
		fallback, fbErr := p.writeFallback(index, identifier)
		if fbErr != nil {
			return errorResult(identifier, fbErr)
		}
		artifact = fallback
	}

	return domain.ProcessingResult{
		Identifier: identifier,
		Status:     domain.StatusSuccess,
		Artifact:   artifact,
		Timestamp:  time.Now(),
	}
}

// writeFallback produces the plain-text artifact used when PDF rendering
// fails. It shares the index/identifier stem with the PDF it replaces.
func (p *Processor) writeFallback(index int, identifier string) (string, error) {
	snap := p.portal.Snapshot()
	name := fmt.Sprintf("%03d_%s_tracking.txt", index, identifier)

	content := fmt.Sprintf(
		"Tracking Information for FCR: %s\nProcessed at: %s\nStatus: Processed\nPage Title: %s\nCurrent URL: %s\n",
		identifier,
		time.Now().Format("2006-01-02 15:04:05"),
		snap.Title,
		snap.URL,
	)

	if err := os.WriteFile(filepath.Join(p.resultsDir, name), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write fallback artifact: %w", err)
	}
	return name, nil
}

func errorResult(identifier string, err error) domain.ProcessingResult {
	return domain.ProcessingResult{
		Identifier: identifier,
		Status:     domain.StatusError,
		Error:      err.Error(),
		Timestamp:  time.Now(),
	}
}
