package export

import (
	"fmt"
	"strings"

	"shortform-preprod/types"
)

// StoryboardMarkdown renders the storyboard grouped by scene, one heading
// per shot with its framing metadata.
func StoryboardMarkdown(sb *types.Storyboard) []byte {
	var md strings.Builder
	fmt.Fprintf(&md, "# Storyboard: %s\n\n", sb.ScriptTitle)
	fmt.Fprintf(&md, "**Target Duration:** %ds\n", sb.TargetDurationSeconds)
	fmt.Fprintf(&md, "**Total Estimated Duration:** %ds\n\n", sb.TotalDuration())
	md.WriteString("---\n\n")

	currentScene := 0
	for _, shot := range sb.Shots {
		if shot.SceneNumber != currentScene {
			currentScene = shot.SceneNumber
			fmt.Fprintf(&md, "## Scene %d\n\n", currentScene)
		}
		fmt.Fprintf(&md, "### Shot %s\n", shot.ShotID)
		fmt.Fprintf(&md, "- **Size:** %s\n", shot.ShotSize)
		fmt.Fprintf(&md, "- **Camera:** %s\n", shot.CameraPosition)
		fmt.Fprintf(&md, "- **Movement:** %s\n", shot.CameraMovement)
		fmt.Fprintf(&md, "- **Duration:** %ds\n", shot.SuggestedDurationSeconds)
		fmt.Fprintf(&md, "- **Description:** %s\n", shot.VisualDescription)
		if shot.AudioNotes != "" {
			fmt.Fprintf(&md, "- **Audio:** %s\n", shot.AudioNotes)
		}
		md.WriteString("\n")
	}
	return []byte(md.String())
}

// ProductionNotesMarkdown renders the production notes, one section per
// advisory category.
func ProductionNotesMarkdown(n *types.ProductionNotes) []byte {
	var md strings.Builder
	fmt.Fprintf(&md, "# Production Notes: %s\n\n", n.ScriptTitle)
	writeAdvisorySection(&md, "Continuity Risks", n.ContinuityRisks)
	writeAdvisorySection(&md, "Audio Capture Recommendations", n.AudioRecommendations)
	writeAdvisorySection(&md, "Coverage Suggestions", n.CoverageSuggestions)
	return []byte(md.String())
}

// PostProductionNotesMarkdown renders the post-production notes
func PostProductionNotesMarkdown(n *types.PostProductionNotes) []byte {
	var md strings.Builder
	fmt.Fprintf(&md, "# Post-Production Notes: %s\n\n", n.ScriptTitle)
	writeAdvisorySection(&md, "Editing Rhythm & Pacing", n.EditingSuggestions)
	writeAdvisorySection(&md, "Platform-Specific Guidelines", n.PlatformGuidelines)
	writeAdvisorySection(&md, "Common Revision Pitfalls", n.RevisionPitfalls)
	return []byte(md.String())
}

func writeAdvisorySection(md *strings.Builder, title string, items []types.AdvisoryItem) {
	fmt.Fprintf(md, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(md, "### %s [%s]\n", item.Description, item.Priority)
		md.WriteString("**Action Steps:**\n")
		for _, step := range item.ActionableSteps {
			fmt.Fprintf(md, "- %s\n", step)
		}
		md.WriteString("\n")
	}
}
