// Package workflow sequences the generation pipeline: brief → script →
// breakdown → storyboard → advisory notes. Every stage is followed by its
// validation gate; the run stops at the first failed gate, keeping the
// artifacts already written for inspection.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	script "shortform-preprod/01_script"
	breakdown "shortform-preprod/02_breakdown"
	storyboard "shortform-preprod/03_storyboard"
	advisory "shortform-preprod/04_advisory"
	"shortform-preprod/config"
	"shortform-preprod/export"
	"shortform-preprod/types"
)

// Result is what one pipeline run produced: the success flag, every issue
// collected up to the failed gate, and the artifact name → path map for
// everything written before the run stopped.
type Result struct {
	Success     bool              `json:"success"`
	Errors      []string          `json:"errors"`
	OutputFiles map[string]string `json:"output_files"`
}

// Workflow owns one instance of every generator and validator
type Workflow struct {
	cfg *config.Config

	scriptGen         *script.Generator
	scriptValidator   *script.Validator
	breakdownGen      *breakdown.Generator
	breakdownVal      *breakdown.Validator
	storyboardGen     *storyboard.Generator
	continuityChecker *storyboard.ContinuityChecker
	productionGen     *advisory.ProductionGenerator
	postProductionGen *advisory.PostProductionGenerator
}

// New creates a Workflow with all stages wired
func New(cfg *config.Config) *Workflow {
	return &Workflow{
		cfg:               cfg,
		scriptGen:         script.New(cfg),
		scriptValidator:   script.NewValidator(cfg),
		breakdownGen:      breakdown.New(cfg),
		breakdownVal:      breakdown.NewValidator(cfg),
		storyboardGen:     storyboard.New(cfg),
		continuityChecker: storyboard.NewContinuityChecker(cfg),
		productionGen:     advisory.NewProduction(cfg),
		postProductionGen: advisory.NewPostProduction(cfg),
	}
}

// Run executes the full pipeline for one brief, writing every artifact into
// outputDir. An empty outputDir gets a per-run directory under the
// configured output root.
func (w *Workflow) Run(ctx context.Context, brief types.Brief, outputDir string) *Result {
	runID := uuid.NewString()[:8]
	if outputDir == "" {
		outputDir = filepath.Join(w.cfg.Paths.Output, runID)
	}

	result := &Result{OutputFiles: map[string]string{}}
	state := &types.PipelineState{
		RunID:     runID,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		Brief:     &brief,
	}
	defer func() {
		state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		state.OutputFiles = result.OutputFiles
		state.Errors = result.Errors
		saveState(state, outputDir)
	}()

	log.Printf("🎬 Pipeline starting — Run ID: %s", runID)
	log.Printf("📁 Output dir: %s", outputDir)

	// ─────────────────────────────────────────────
	// STAGE 1: Script
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 1: Script ━━━")
	state.Stage = "generate-script"
	s, err := w.scriptGen.Run(ctx, brief)
	if err != nil {
		return result.fail("Stage 1 Script: %v", err)
	}
	if report := w.scriptValidator.Check(s); !report.Valid {
		return result.failGate(report)
	}
	if !w.persist(result, "script", outputDir, export.ArtifactName(brief.Title, "script.json"), mustJSON(s)) {
		return result
	}

	// ─────────────────────────────────────────────
	// STAGE 2: Breakdown
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 2: Breakdown ━━━")
	state.Stage = "generate-breakdown"
	b, err := w.breakdownGen.Run(ctx, s)
	if err != nil {
		return result.fail("Stage 2 Breakdown: %v", err)
	}
	if report := w.breakdownVal.Check(b, s); !report.Valid {
		return result.failGate(report)
	}
	if !w.persist(result, "breakdown_json", outputDir, export.ArtifactName(brief.Title, "breakdown.json"), mustJSON(b)) {
		return result
	}
	csvData, err := export.BreakdownCSV(b)
	if err != nil {
		return result.fail("Stage 2 Breakdown: render CSV: %v", err)
	}
	if !w.persist(result, "breakdown_csv", outputDir, export.ArtifactName(brief.Title, "breakdown.csv"), csvData) {
		return result
	}

	// ─────────────────────────────────────────────
	// STAGE 3: Storyboard
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 3: Storyboard ━━━")
	state.Stage = "generate-storyboard"
	sb, err := w.storyboardGen.Run(ctx, s, b)
	if err != nil {
		return result.fail("Stage 3 Storyboard: %v", err)
	}
	if report := w.continuityChecker.Check(sb, s); !report.Valid {
		return result.failGate(report)
	}
	if !w.persist(result, "storyboard", outputDir, export.ArtifactName(brief.Title, "storyboard.md"), export.StoryboardMarkdown(sb)) {
		return result
	}
	shotCSV, err := export.ShotListCSV(sb)
	if err != nil {
		return result.fail("Stage 3 Storyboard: render shot list: %v", err)
	}
	if !w.persist(result, "shotlist", outputDir, export.ArtifactName(brief.Title, "shotlist.csv"), shotCSV) {
		return result
	}

	// ─────────────────────────────────────────────
	// STAGE 4: Production Advisory
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 4: Production Advisory ━━━")
	state.Stage = "production-advisory"
	prodNotes, err := w.productionGen.Run(ctx, s, b, sb)
	if err != nil {
		return result.fail("Stage 4 Production Advisory: %v", err)
	}
	if report := w.advisoryGate("Production notes", prodNotes.Validate(), prodNotes.ItemCount()); !report.Valid {
		return result.failGate(report)
	}
	if !w.persist(result, "production_notes", outputDir, export.ArtifactName(brief.Title, "production_notes.md"), export.ProductionNotesMarkdown(prodNotes)) {
		return result
	}

	// ─────────────────────────────────────────────
	// STAGE 5: Post-Production Advisory
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 5: Post-Production Advisory ━━━")
	state.Stage = "postproduction-advisory"
	postNotes, err := w.postProductionGen.Run(ctx, s, sb)
	if err != nil {
		return result.fail("Stage 5 Post-Production Advisory: %v", err)
	}
	if report := w.advisoryGate("Post-production notes", postNotes.Validate(), postNotes.ItemCount()); !report.Valid {
		return result.failGate(report)
	}
	if !w.persist(result, "postproduction_notes", outputDir, export.ArtifactName(brief.Title, "postproduction_notes.md"), export.PostProductionNotesMarkdown(postNotes)) {
		return result
	}

	state.Stage = "complete"
	result.Success = true
	log.Printf("✅ Pipeline complete — %d artifacts in %s", len(result.OutputFiles), outputDir)
	return result
}

// advisoryGate is the acceptance check for a notes document: structurally
// valid and at least the configured number of actionable items.
func (w *Workflow) advisoryGate(label string, err error, itemCount int) types.Report {
	var report types.Report
	if err != nil {
		report.Add("%s: %v", label, err)
		return report.Finish()
	}
	if min := w.cfg.Validation.MinAdvisoryItems; itemCount < min {
		report.Add("%s must have at least %d actionable items (got %d)", label, min, itemCount)
	}
	return report.Finish()
}

// persist writes one artifact and records its path; a write failure ends
// the run.
func (w *Workflow) persist(result *Result, key, dir, name string, data []byte) bool {
	path, err := export.WriteFile(dir, name, data)
	if err != nil {
		result.fail("persist %s: %v", key, err)
		return false
	}
	result.OutputFiles[key] = path
	return true
}

func (r *Result) fail(format string, args ...interface{}) *Result {
	msg := fmt.Sprintf(format, args...)
	log.Printf("❌ %s", msg)
	r.Errors = append(r.Errors, msg)
	r.Success = false
	return r
}

func (r *Result) failGate(report types.Report) *Result {
	for _, issue := range report.Issues {
		log.Printf("❌ %s", issue)
	}
	r.Errors = append(r.Errors, report.Issues...)
	r.Success = false
	return r
}

// mustJSON is only called on our own marshal-safe artifact types
func mustJSON(v interface{}) []byte {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

func saveState(state *types.PipelineState, dir string) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Printf("Warning: could not marshal pipeline state: %v", err)
		return
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: could not create %s: %v", dir, err)
		return
	}
	if err := os.WriteFile(filepath.Join(dir, "pipeline_state.json"), data, 0644); err != nil {
		log.Printf("Warning: could not save pipeline state: %v", err)
	}
}

// ExpectedArtifacts are the glob patterns a complete run leaves behind
var ExpectedArtifacts = []string{
	"*_script.json",
	"*_breakdown.json",
	"*_breakdown.csv",
	"*_storyboard.md",
	"*_shotlist.csv",
	"*_production_notes.md",
	"*_postproduction_notes.md",
}

// VerifyOutput checks that a directory contains every artifact a complete
// run produces.
func VerifyOutput(outputDir string) types.Report {
	var report types.Report
	if _, err := os.Stat(outputDir); err != nil {
		report.Add("Output directory does not exist: %s", outputDir)
		return report.Finish()
	}
	for _, pattern := range ExpectedArtifacts {
		matches, err := filepath.Glob(filepath.Join(outputDir, pattern))
		if err != nil || len(matches) == 0 {
			report.Add("Missing required file matching pattern: %s", pattern)
		}
	}
	return report.Finish()
}
