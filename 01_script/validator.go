package script

import (
	"math"
	"strings"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// Validator gates a script for production readiness
type Validator struct {
	cfg *config.Config
}

// NewValidator creates a new script Validator
func NewValidator(cfg *config.Config) *Validator {
	return &Validator{cfg: cfg}
}

// Check runs the production-readiness gate. A structural failure
// short-circuits; the remaining checks accumulate issues.
func (v *Validator) Check(s *types.Script) types.Report {
	var report types.Report

	if err := s.Validate(); err != nil {
		report.Add("%v", err)
		return report.Finish()
	}

	// Long monologues read badly on short-form platforms
	for _, scene := range s.Scenes {
		for _, d := range scene.Dialogues {
			if len(strings.Fields(d.Text)) > v.cfg.Validation.MaxDialogueWords {
				report.Add("Scene %d: Dialogue too long for %s (>%d words may not be conversational)",
					scene.SceneNumber, d.Character, v.cfg.Validation.MaxDialogueWords)
			}
		}
	}

	total := s.TotalEstimatedDuration()
	if total > 0 {
		deviation := math.Abs(float64(total-s.TargetDurationSeconds)) / float64(s.TargetDurationSeconds)
		if deviation > v.cfg.Validation.ScriptDurationTolerance {
			report.Add("Total estimated duration (%ds) deviates significantly from target (%ds)",
				total, s.TargetDurationSeconds)
		}
	}

	return report.Finish()
}
