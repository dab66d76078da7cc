package advisory

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// ProductionGenerator derives shoot-day guidance from the validated
// script, breakdown and storyboard.
type ProductionGenerator struct {
	cfg *config.Config
}

// NewProduction creates a new ProductionGenerator
func NewProduction(cfg *config.Config) *ProductionGenerator {
	return &ProductionGenerator{cfg: cfg}
}

// Run builds the production notes. Acceptance (the minimum-item gate) is
// the orchestrator's job, not the generator's.
func (g *ProductionGenerator) Run(ctx context.Context, s *types.Script, b *types.Breakdown, sb *types.Storyboard) (*types.ProductionNotes, error) {
	log.Println("[advisory] Generating production notes...")

	notes := &types.ProductionNotes{
		ScriptTitle:          s.Title,
		ContinuityRisks:      continuityRisks(b),
		AudioRecommendations: audioRecommendations(s, b),
		CoverageSuggestions:  coverageSuggestions(sb),
	}
	total := len(notes.ContinuityRisks) + len(notes.AudioRecommendations) + len(notes.CoverageSuggestions)
	log.Printf("[advisory] ✅ Production notes ready: %d items", total)
	return notes, nil
}

// continuityRisks flags wardrobe, prop and transition continuity hazards
func continuityRisks(b *types.Breakdown) []types.AdvisoryItem {
	var risks []types.AdvisoryItem

	// A character appearing in more than one scene is a wardrobe-matching
	// hazard between setups.
	characterScenes := make(map[string][]int)
	var characterOrder []string
	for _, entry := range b.Entries {
		for _, char := range entry.Characters {
			if _, ok := characterScenes[char]; !ok {
				characterOrder = append(characterOrder, char)
			}
			characterScenes[char] = append(characterScenes[char], entry.SceneNumber)
		}
	}
	for _, char := range characterOrder {
		scenes := characterScenes[char]
		if len(scenes) > 1 {
			risks = append(risks, types.AdvisoryItem{
				Category:    "continuity",
				Priority:    types.PriorityHigh,
				Description: fmt.Sprintf("Wardrobe continuity for %s across %d scenes", char, len(scenes)),
				ActionableSteps: []string{
					fmt.Sprintf("Document %s's wardrobe in detail before shooting", char),
					"Take reference photos of wardrobe from multiple angles",
					fmt.Sprintf("Maintain wardrobe consistency across scenes %s", joinInts(scenes)),
				},
			})
		}
	}

	propScenes := make(map[string][]int)
	var propOrder []string
	for _, entry := range b.Entries {
		for _, prop := range entry.Props {
			if _, ok := propScenes[prop.Description]; !ok {
				propOrder = append(propOrder, prop.Description)
			}
			propScenes[prop.Description] = append(propScenes[prop.Description], entry.SceneNumber)
		}
	}
	for _, prop := range propOrder {
		if len(propScenes[prop]) > 1 {
			risks = append(risks, types.AdvisoryItem{
				Category:    "continuity",
				Priority:    types.PriorityMedium,
				Description: fmt.Sprintf("Prop continuity: %s appears in multiple scenes", prop),
				ActionableSteps: []string{
					fmt.Sprintf("Track %s placement and condition", prop),
					"Take continuity photos between takes",
					"Designate a continuity supervisor for props",
				},
			})
		}
	}

	// Any location or time-of-day change between adjacent scenes gets one
	// aggregate transition warning.
	transitions := false
	for i := 1; i < len(b.Entries); i++ {
		prev, cur := b.Entries[i-1], b.Entries[i]
		if cur.Location != prev.Location || cur.TimeOfDay != prev.TimeOfDay {
			transitions = true
			break
		}
	}
	if transitions {
		risks = append(risks, types.AdvisoryItem{
			Category:    "continuity",
			Priority:    types.PriorityMedium,
			Description: "Location/time transitions require careful continuity",
			ActionableSteps: []string{
				"Document lighting conditions for each location",
				"Note exact camera positions for matching shots",
				"Review footage before moving to next location",
			},
		})
	}

	return risks
}

func audioRecommendations(s *types.Script, b *types.Breakdown) []types.AdvisoryItem {
	var recs []types.AdvisoryItem

	hasDialogue := false
	for _, scene := range s.Scenes {
		if len(scene.Dialogues) > 0 {
			hasDialogue = true
			break
		}
	}
	if hasDialogue {
		recs = append(recs, types.AdvisoryItem{
			Category:    "audio",
			Priority:    types.PriorityHigh,
			Description: "Dialogue recording and backup",
			ActionableSteps: []string{
				"Use lavalier mics for all speaking characters",
				"Record backup audio with boom mic",
				"Capture room tone for each location (30 seconds minimum)",
				"Monitor audio levels continuously during takes",
			},
		})
	}

	// One exterior warning is enough no matter how many EXT scenes exist
	for _, entry := range b.Entries {
		if entry.LocationType == types.Exterior {
			recs = append(recs, types.AdvisoryItem{
				Category:    "audio",
				Priority:    types.PriorityMedium,
				Description: fmt.Sprintf("Exterior audio challenges for Scene %d", entry.SceneNumber),
				ActionableSteps: []string{
					"Scout location for ambient noise issues",
					"Plan shooting schedule around noise patterns",
					"Bring wind protection for microphones",
					"Record wild sound for atmosphere",
				},
			})
			break
		}
	}

	recs = append(recs, types.AdvisoryItem{
		Category:    "audio",
		Priority:    types.PriorityMedium,
		Description: "Audio coverage and wild sound",
		ActionableSteps: []string{
			"Record wild sound for each location",
			"Capture ambient sound separately",
			"Record foley reference sounds on set",
			"Document all audio takes with detailed notes",
		},
	})

	return recs
}

func coverageSuggestions(sb *types.Storyboard) []types.AdvisoryItem {
	suggestions := []types.AdvisoryItem{{
		Category:    "coverage",
		Priority:    types.PriorityHigh,
		Description: "B-roll and cutaway coverage",
		ActionableSteps: []string{
			"Shoot establishing shots from multiple angles",
			"Capture insert shots of key props and details",
			"Record environmental B-roll for each location",
			"Get cutaways for editing flexibility",
		},
	}}

	shotCounts := make(map[int]int)
	var sceneOrder []int
	for _, shot := range sb.Shots {
		if shotCounts[shot.SceneNumber] == 0 {
			sceneOrder = append(sceneOrder, shot.SceneNumber)
		}
		shotCounts[shot.SceneNumber]++
	}
	sort.Ints(sceneOrder)
	for _, sceneNum := range sceneOrder {
		if count := shotCounts[sceneNum]; count < 3 {
			suggestions = append(suggestions, types.AdvisoryItem{
				Category:    "coverage",
				Priority:    types.PriorityMedium,
				Description: fmt.Sprintf("Scene %d has limited coverage (%d shots)", sceneNum, count),
				ActionableSteps: []string{
					"Consider additional angles for editing flexibility",
					"Shoot safety coverage from different perspectives",
					"Capture reaction shots if multiple characters present",
				},
			})
		}
	}

	suggestions = append(suggestions, types.AdvisoryItem{
		Category:    "coverage",
		Priority:    types.PriorityMedium,
		Description: "Safety coverage and protection shots",
		ActionableSteps: []string{
			"Shoot master shots for each scene",
			"Get clean plates of locations without actors",
			"Record additional takes of critical moments",
			"Capture coverage for potential reshoots",
		},
	})

	return suggestions
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
