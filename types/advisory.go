package types

import (
	"fmt"
	"strings"
)

// Advisory priorities
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// MinAdvisoryItems is the default minimum combined item count for a notes
// document to be considered actionable. The acceptance gate reads the
// configured value; this is only the compiled default.
const MinAdvisoryItems = 3

// AdvisoryItem is one prioritized, actionable recommendation
type AdvisoryItem struct {
	Category        string   `json:"category"` // continuity | audio | coverage | editing | platform | revision
	Priority        string   `json:"priority"` // HIGH | MEDIUM | LOW
	Description     string   `json:"description"`
	ActionableSteps []string `json:"actionable_steps"`
}

// Validate checks a single advisory item
func (a AdvisoryItem) Validate() error {
	if strings.TrimSpace(a.Category) == "" {
		return fmt.Errorf("category cannot be empty")
	}
	switch a.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("invalid priority: %q", a.Priority)
	}
	if strings.TrimSpace(a.Description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if len(a.ActionableSteps) == 0 {
		return fmt.Errorf("advisory must have at least one actionable step")
	}
	return nil
}

// ProductionNotes bundles shoot-day guidance derived from the artifacts
type ProductionNotes struct {
	ScriptTitle          string         `json:"script_title"`
	ContinuityRisks      []AdvisoryItem `json:"continuity_risks"`
	AudioRecommendations []AdvisoryItem `json:"audio_recommendations"`
	CoverageSuggestions  []AdvisoryItem `json:"coverage_suggestions"`
}

// Validate checks the title and every item. The minimum-item count is a
// tunable threshold, so it belongs to the acceptance gate, not the model.
func (n *ProductionNotes) Validate() error {
	if strings.TrimSpace(n.ScriptTitle) == "" {
		return fmt.Errorf("script title cannot be empty")
	}
	for _, group := range [][]AdvisoryItem{n.ContinuityRisks, n.AudioRecommendations, n.CoverageSuggestions} {
		for _, item := range group {
			if err := item.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// ItemCount is the combined number of advisory items
func (n *ProductionNotes) ItemCount() int {
	return len(n.ContinuityRisks) + len(n.AudioRecommendations) + len(n.CoverageSuggestions)
}

// PostProductionNotes bundles editing-room guidance
type PostProductionNotes struct {
	ScriptTitle        string         `json:"script_title"`
	EditingSuggestions []AdvisoryItem `json:"editing_suggestions"`
	PlatformGuidelines []AdvisoryItem `json:"platform_guidelines"`
	RevisionPitfalls   []AdvisoryItem `json:"revision_pitfalls"`
}

// Validate checks the title and every item. The minimum-item count is
// checked by the acceptance gate against the configured threshold.
func (n *PostProductionNotes) Validate() error {
	if strings.TrimSpace(n.ScriptTitle) == "" {
		return fmt.Errorf("script title cannot be empty")
	}
	for _, group := range [][]AdvisoryItem{n.EditingSuggestions, n.PlatformGuidelines, n.RevisionPitfalls} {
		for _, item := range group {
			if err := item.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// ItemCount is the combined number of advisory items
func (n *PostProductionNotes) ItemCount() int {
	return len(n.EditingSuggestions) + len(n.PlatformGuidelines) + len(n.RevisionPitfalls)
}
