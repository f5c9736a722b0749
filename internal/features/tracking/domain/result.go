package domain

import (
	"fmt"
	"time"
)

// Status represents the final outcome of processing one identifier.
type Status string

const (
	// StatusSuccess indicates an artifact was produced for the identifier.
	StatusSuccess Status = "success"
	// StatusError indicates no artifact could be produced.
	StatusError Status = "error"
)

// ProcessingResult is the record created for exactly one identifier during a
// batch run. It is immutable after creation.
type ProcessingResult struct {
	// Identifier is the FCR/booking number that was processed.
	Identifier string `json:"fcr_number"`
	// Status is the final outcome for this identifier.
	Status Status `json:"status"`
	// Artifact is the produced file name (PDF or text fallback). Empty on error.
	Artifact string `json:"pdf_file,omitempty"`
	// Error holds the failure detail. Empty on success.
	Error string `json:"error,omitempty"`
	// Timestamp is when the result was recorded.
	Timestamp time.Time `json:"timestamp"`
}

// BatchRun aggregates the results of one execution.
type BatchRun struct {
	// Results holds one ProcessingResult per input identifier, in input order.
	Results []ProcessingResult `json:"detailed_results"`
}

// SuccessfulArtifacts returns the artifact file names of successful items,
// preserving relative order.
func (b *BatchRun) SuccessfulArtifacts() []string {
	var artifacts []string
	for _, r := range b.Results {
		if r.Status == StatusSuccess {
			artifacts = append(artifacts, r.Artifact)
		}
	}
	return artifacts
}

// FailedIdentifiers returns the identifiers of failed items, preserving
// relative order.
func (b *BatchRun) FailedIdentifiers() []string {
	var failed []string
	for _, r := range b.Results {
		if r.Status == StatusError {
			failed = append(failed, r.Identifier)
		}
	}
	return failed
}

// Total returns the number of processed identifiers.
func (b *BatchRun) Total() int {
	return len(b.Results)
}

// Successful returns the number of successful items.
func (b *BatchRun) Successful() int {
	return len(b.SuccessfulArtifacts())
}

// Failed returns the number of failed items.
func (b *BatchRun) Failed() int {
	return len(b.FailedIdentifiers())
}

// SuccessRate renders the success percentage with one decimal place.
// An empty batch yields the literal "0%".
func (b *BatchRun) SuccessRate() string {
	if len(b.Results) == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(b.Successful())/float64(b.Total())*100)
}
