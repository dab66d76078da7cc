package advisory

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// PostProductionGenerator derives editing-room guidance from the script
// and storyboard.
type PostProductionGenerator struct {
	cfg *config.Config
}

// NewPostProduction creates a new PostProductionGenerator
func NewPostProduction(cfg *config.Config) *PostProductionGenerator {
	return &PostProductionGenerator{cfg: cfg}
}

// shortFormThresholdSeconds separates fast-cut short-form pacing advice
// from longer edits.
const shortFormThresholdSeconds = 60

// Run builds the post-production notes. Acceptance is the orchestrator's job.
func (g *PostProductionGenerator) Run(ctx context.Context, s *types.Script, sb *types.Storyboard) (*types.PostProductionNotes, error) {
	log.Println("[advisory] Generating post-production notes...")

	notes := &types.PostProductionNotes{
		ScriptTitle:        s.Title,
		EditingSuggestions: editingSuggestions(s),
		PlatformGuidelines: platformGuidelines(s),
		RevisionPitfalls:   revisionPitfalls(),
	}
	total := len(notes.EditingSuggestions) + len(notes.PlatformGuidelines) + len(notes.RevisionPitfalls)
	log.Printf("[advisory] ✅ Post-production notes ready: %d items", total)
	return notes, nil
}

func editingSuggestions(s *types.Script) []types.AdvisoryItem {
	var suggestions []types.AdvisoryItem

	if len(s.Scenes) > 0 && s.Scenes[0].IsHook {
		suggestions = append(suggestions, types.AdvisoryItem{
			Category:    "editing",
			Priority:    types.PriorityHigh,
			Description: "Hook optimization for retention",
			ActionableSteps: []string{
				"Ensure hook appears within first 3 seconds",
				"Use quick cuts to maintain energy",
				"Add sound effects or music to enhance impact",
				"Test multiple hook variations for engagement",
			},
		})
	}

	if s.TargetDurationSeconds <= shortFormThresholdSeconds {
		suggestions = append(suggestions, types.AdvisoryItem{
			Category:    "editing",
			Priority:    types.PriorityHigh,
			Description: "Short-form pacing and rhythm",
			ActionableSteps: []string{
				"Keep cuts dynamic (2-4 seconds per shot average)",
				"Use jump cuts to compress time",
				"Add transitions sparingly (cuts are faster)",
				"Maintain momentum throughout - no dead air",
			},
		})
	}

	suggestions = append(suggestions, types.AdvisoryItem{
		Category:    "editing",
		Priority:    types.PriorityMedium,
		Description: "Scene transitions and flow",
		ActionableSteps: []string{
			"Use audio bridges between scenes",
			"Match action across cuts when possible",
			"Consider L-cuts and J-cuts for smooth transitions",
			"Test pacing by watching without sound",
		},
	})

	return suggestions
}

func platformGuidelines(s *types.Script) []types.AdvisoryItem {
	var guidelines []types.AdvisoryItem

	if s.Platform == types.PlatformTikTok || s.Platform == types.PlatformInstagramReels {
		guidelines = append(guidelines, types.AdvisoryItem{
			Category:    "platform",
			Priority:    types.PriorityHigh,
			Description: fmt.Sprintf("%s vertical format optimization", strings.ToUpper(string(s.Platform))),
			ActionableSteps: []string{
				"Export in 9:16 vertical aspect ratio",
				"Frame for mobile viewing (faces in upper 2/3)",
				"Ensure text is readable on small screens",
				"Test on actual mobile device before publishing",
			},
		})
	}

	guidelines = append(guidelines,
		types.AdvisoryItem{
			Category:    "platform",
			Priority:    types.PriorityHigh,
			Description: "Subtitles and captions for accessibility",
			ActionableSteps: []string{
				"Add burned-in subtitles (many watch without sound)",
				"Use large, high-contrast text (white with black outline)",
				"Sync subtitles precisely with dialogue",
				"Keep subtitle duration readable (1-2 seconds per line)",
			},
		},
		types.AdvisoryItem{
			Category:    "platform",
			Priority:    types.PriorityMedium,
			Description: "Sound design and music",
			ActionableSteps: []string{
				"Use trending audio if appropriate for platform",
				"Balance music and dialogue levels carefully",
				"Add sound effects to enhance key moments",
				"Ensure audio is clear even on phone speakers",
			},
		},
		types.AdvisoryItem{
			Category:    "platform",
			Priority:    types.PriorityMedium,
			Description: "Color grading for mobile viewing",
			ActionableSteps: []string{
				"Increase contrast for mobile screens",
				"Boost saturation slightly for impact",
				"Ensure skin tones are natural",
				"Test color on multiple devices",
			},
		},
	)

	return guidelines
}

// revisionPitfalls is a fixed checklist; every edit hits the same traps
func revisionPitfalls() []types.AdvisoryItem {
	return []types.AdvisoryItem{
		{
			Category:    "revision",
			Priority:    types.PriorityMedium,
			Description: "Over-editing and loss of natural flow",
			ActionableSteps: []string{
				"Don't cut too frequently - allow moments to breathe",
				"Preserve natural pauses in dialogue",
				"Avoid excessive effects or transitions",
				"Get fresh eyes - show to someone unfamiliar with project",
			},
		},
		{
			Category:    "revision",
			Priority:    types.PriorityHigh,
			Description: "Audio quality and consistency",
			ActionableSteps: []string{
				"Check audio levels are consistent across cuts",
				"Remove background noise without losing dialogue clarity",
				"Ensure music doesn't overpower dialogue",
				"Add room tone to fill gaps and smooth transitions",
			},
		},
		{
			Category:    "revision",
			Priority:    types.PriorityMedium,
			Description: "Pacing and retention issues",
			ActionableSteps: []string{
				"Cut ruthlessly - remove anything that doesn't serve the story",
				"Test with target audience for engagement",
				"Watch for drop-off points and tighten those sections",
				"Ensure payoff matches the hook's promise",
			},
		},
	}
}
