package breakdown

import (
	"sort"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// Validator cross-checks a breakdown against the script it came from
type Validator struct {
	cfg *config.Config
}

// NewValidator creates a new breakdown Validator
func NewValidator(cfg *config.Config) *Validator {
	return &Validator{cfg: cfg}
}

// Check verifies the breakdown's own structure, then the 1:1 scene mapping
// and character consistency with the script.
func (v *Validator) Check(b *types.Breakdown, s *types.Script) types.Report {
	var report types.Report

	if err := b.Validate(); err != nil {
		report.Add("%v", err)
		return report.Finish()
	}

	if len(b.Entries) != len(s.Scenes) {
		report.Add("Scene count mismatch: script has %d scenes, breakdown has %d entries",
			len(s.Scenes), len(b.Entries))
	}

	scriptScenes := make(map[int]bool, len(s.Scenes))
	for _, scene := range s.Scenes {
		scriptScenes[scene.SceneNumber] = true
	}
	entryScenes := make(map[int]bool, len(b.Entries))
	for _, e := range b.Entries {
		entryScenes[e.SceneNumber] = true
	}

	var missing, extra []int
	for n := range scriptScenes {
		if !entryScenes[n] {
			missing = append(missing, n)
		}
	}
	for n := range entryScenes {
		if !scriptScenes[n] {
			extra = append(extra, n)
		}
	}
	sort.Ints(missing)
	sort.Ints(extra)
	if len(missing) > 0 {
		report.Add("Missing breakdown entries for scenes: %v", missing)
	}
	if len(extra) > 0 {
		report.Add("Extra breakdown entries for non-existent scenes: %v", extra)
	}

	declared := make(map[string]bool, len(s.Characters))
	for _, c := range s.Characters {
		declared[c.Name] = true
	}
	for _, e := range b.Entries {
		for _, character := range e.Characters {
			if !declared[character] {
				report.Add("Scene %d: Character %q not in script character list", e.SceneNumber, character)
			}
		}
	}

	for _, e := range b.Entries {
		if len(e.Characters) == 0 {
			report.Add("Scene %d: No characters listed", e.SceneNumber)
		}
		if len(e.Wardrobe) == 0 {
			report.Add("Scene %d: No wardrobe elements listed", e.SceneNumber)
		}
	}

	return report.Finish()
}
