package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"maersk-tracker/internal/core/logger"
	"maersk-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

const timestampLayout = "20060102_150405"

// Generator writes the durable record of a batch run: a human-readable
// summary log, a JSON summary document and a combined report of successful
// artifacts. All files are write-once and timestamp-suffixed.
type Generator struct {
	resultsDir string
	logger     *zap.Logger
	now        func() time.Time
}

// NewGenerator creates a Generator writing into resultsDir.
func NewGenerator(resultsDir string) *Generator {
	return &Generator{
		resultsDir: resultsDir,
		logger:     logger.Get(),
		now:        time.Now,
	}
}

// summaryDocument mirrors the summary log fields plus the raw per-item
// records.
type summaryDocument struct {
	Timestamp       string                    `json:"timestamp"`
	TotalProcessed  int                       `json:"total_processed"`
	Successful      int                       `json:"successful"`
	Failed          int                       `json:"failed"`
	SuccessRate     string                    `json:"success_rate"`
	SuccessfulPDFs  []string                  `json:"successful_pdfs"`
	FailedBookings  []string                  `json:"failed_bookings"`
	DetailedResults []domain.ProcessingResult `json:"detailed_results"`
}

// WriteSummary produces the text summary log and the JSON summary document.
// It returns the two file names.
func (g *Generator) WriteSummary(run domain.BatchRun) (string, string, error) {
	ts := g.now()
	suffix := ts.Format(timestampLayout)

	logName := fmt.Sprintf("automation_log_%s.txt", suffix)
	if err := os.WriteFile(filepath.Join(g.resultsDir, logName), []byte(g.renderSummaryLog(run, ts)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write summary log: %w", err)
	}

	jsonName := fmt.Sprintf("tracking_summary_%s.json", suffix)
	doc := summaryDocument{
		Timestamp:       ts.Format(time.RFC3339),
		TotalProcessed:  run.Total(),
		Successful:      run.Successful(),
		Failed:          run.Failed(),
		SuccessRate:     run.SuccessRate(),
		SuccessfulPDFs:  run.SuccessfulArtifacts(),
		FailedBookings:  run.FailedIdentifiers(),
		DetailedResults: run.Results,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.resultsDir, jsonName), data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write summary json: %w", err)
	}

	g.logger.Info("Summary reports written",
		zap.String("log", logName),
		zap.String("summary", jsonName),
	)
	return logName, jsonName, nil
}

func (g *Generator) renderSummaryLog(run domain.BatchRun, ts time.Time) string {
	var b strings.Builder

	b.WriteString("=== DAMCO TRACKING AUTOMATION LOG ===\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", ts.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Processed: %d\n", run.Total())
	fmt.Fprintf(&b, "Successful: %d\n", run.Successful())
	fmt.Fprintf(&b, "Failed: %d\n", run.Failed())
	fmt.Fprintf(&b, "Success Rate: %s\n\n", run.SuccessRate())

	b.WriteString("=== SUCCESSFUL FILES ===\n")
	for _, a := range run.SuccessfulArtifacts() {
		fmt.Fprintf(&b, "%s\n", a)
	}

	b.WriteString("\n=== FAILED BOOKINGS ===\n")
	for _, id := range run.FailedIdentifiers() {
		fmt.Fprintf(&b, "%s\n", id)
	}

	b.WriteString("\n=== DETAILED RESULTS ===\n")
	for _, r := range run.Results {
		fmt.Fprintf(&b, "FCR: %s | Status: %s | Time: %s\n",
			r.Identifier, r.Status, r.Timestamp.Format(time.RFC3339))
		if r.Error != "" {
			fmt.Fprintf(&b, "   Error: %s\n", r.Error)
		}
	}

	return b.String()
}

// WriteCombinedReport enumerates the successful artifact file names in one
// text file. It returns the empty string when the run produced no
// artifacts.
func (g *Generator) WriteCombinedReport(run domain.BatchRun) (string, error) {
	artifacts := run.SuccessfulArtifacts()
	if len(artifacts) == 0 {
		return "", nil
	}

	ts := g.now()
	name := fmt.Sprintf("tracking_report_%s.txt", ts.Format(timestampLayout))

	var b strings.Builder
	b.WriteString("DAMCO TRACKING AUTOMATION REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", ts.Format("2006-01-02 15:04:05"))
	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "- Total Processed: %d\n", run.Total())
	fmt.Fprintf(&b, "- Successful: %d\n", run.Successful())
	fmt.Fprintf(&b, "- Failed: %d\n\n", run.Failed())
	b.WriteString("SUCCESSFUL FILES:\n")
	for _, a := range artifacts {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	if err := os.WriteFile(filepath.Join(g.resultsDir, name), []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write combined report: %w", err)
	}

	g.logger.Info("Combined report written", zap.String("report", name))
	return name, nil
}
