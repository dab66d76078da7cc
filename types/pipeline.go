package types

import (
	"fmt"
	"strings"
)

// Brief is the creative input that seeds the whole pipeline
type Brief struct {
	Title                 string   `json:"title"`
	Genre                 string   `json:"genre"`
	Platform              Platform `json:"platform"`
	TargetDurationSeconds int      `json:"target_duration_seconds"`
	TargetAudience        string   `json:"target_audience"`
	Concept               string   `json:"concept,omitempty"`
}

// Validate checks the brief before any stage runs
func (b Brief) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if strings.TrimSpace(b.Genre) == "" {
		return fmt.Errorf("genre cannot be empty")
	}
	if !b.Platform.Valid() {
		return fmt.Errorf("invalid platform: %q", b.Platform)
	}
	if b.TargetDurationSeconds < MinTargetDurationSeconds || b.TargetDurationSeconds > MaxTargetDurationSeconds {
		return fmt.Errorf("target duration must be between %d-%d seconds", MinTargetDurationSeconds, MaxTargetDurationSeconds)
	}
	if strings.TrimSpace(b.TargetAudience) == "" {
		return fmt.Errorf("target audience cannot be empty")
	}
	return nil
}

// Report is the soft-failure channel returned by validation gates.
// Gates never return errors; they collect human-readable issues instead.
type Report struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// Add appends an issue and marks the report invalid
func (r *Report) Add(format string, args ...interface{}) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}

// Finish sets Valid from the collected issues and returns the report by value
func (r *Report) Finish() Report {
	r.Valid = len(r.Issues) == 0
	return *r
}

// PipelineState tracks the state of one pipeline run, saved alongside the
// generated artifacts for later inspection.
type PipelineState struct {
	RunID       string            `json:"run_id"`
	StartedAt   string            `json:"started_at"`
	CompletedAt string            `json:"completed_at"`
	Brief       *Brief            `json:"brief"`
	Stage       string            `json:"stage"`
	OutputFiles map[string]string `json:"output_files"`
	Errors      []string          `json:"errors,omitempty"`
}
