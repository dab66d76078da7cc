package storyboard

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// Generator turns a script and its breakdown into an ordered shot list
type Generator struct {
	cfg *config.Config
}

// New creates a new storyboard Generator
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run builds a Storyboard. Both inputs must already be self-consistent;
// an invalid script or breakdown is a hard failure.
func (g *Generator) Run(ctx context.Context, s *types.Script, b *types.Breakdown) (*types.Storyboard, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid breakdown: %w", err)
	}
	log.Printf("[storyboard] Planning shots for %d scenes...", len(s.Scenes))

	var shots []types.Shot
	for _, scene := range s.Scenes {
		shots = append(shots, g.shotsForScene(scene, s)...)
	}

	sb := &types.Storyboard{
		ScriptTitle:           s.Title,
		TargetDurationSeconds: s.TargetDurationSeconds,
		Shots:                 shots,
	}
	log.Printf("[storyboard] ✅ Storyboard ready: %d shots, %ds total", len(sb.Shots), sb.TotalDuration())
	return sb, nil
}

// shotID builds IDs like "1A", "1B" from the scene number and shot index
func shotID(sceneNumber, index int) string {
	return fmt.Sprintf("%d%c", sceneNumber, 'A'+index)
}

func (g *Generator) shotsForScene(scene types.Scene, s *types.Script) []types.Shot {
	sceneDuration := scene.EstimatedDurationSeconds
	if sceneDuration == 0 {
		sceneDuration = s.TargetDurationSeconds / len(s.Scenes)
	}
	genre := strings.ToLower(s.Genre)

	if scene.IsHook {
		return hookShots(scene, genre, sceneDuration)
	}
	return coverageShots(scene, genre, sceneDuration)
}

// hookShots cuts the opening scene for immediate engagement: a short
// establishing beat, then a close-up on the first line. Pacing varies by
// genre — comedy cuts fast, drama builds slowly.
func hookShots(scene types.Scene, genre string, sceneDuration int) []types.Shot {
	var establishDur, reactionDur int
	var establishPos, establishDesc string

	switch {
	case strings.Contains(genre, "comedy"):
		establishDur, reactionDur = 1, 4
		establishPos = "Eye level, centered on moment of chaos"
		establishDesc = fmt.Sprintf("%s: %s. Beat before disaster.", scene.Location, scene.Description)
	case strings.Contains(genre, "drama"):
		establishDur, reactionDur = 2, 3
		establishPos = "Eye level, emotional distance closing"
		establishDesc = fmt.Sprintf("%s: %s. Tension builds.", scene.Location, scene.Description)
	default:
		establishDur, reactionDur = 2, sceneDuration-2
		establishPos = "Eye level, centered on action"
		establishDesc = fmt.Sprintf("%s: %s. Immediate visual impact.", scene.Location, scene.Description)
	}

	shots := []types.Shot{{
		ShotID:                   shotID(scene.SceneNumber, 0),
		SceneNumber:              scene.SceneNumber,
		ShotSize:                 types.Medium,
		CameraPosition:           establishPos,
		CameraMovement:           types.Static,
		VisualDescription:        establishDesc,
		SuggestedDurationSeconds: establishDur,
	}}

	if len(scene.Dialogues) == 0 {
		return shots
	}
	d := scene.Dialogues[0]

	var reactionPos, reactionDesc string
	switch {
	case strings.Contains(genre, "comedy"):
		reactionPos = fmt.Sprintf("Tight on %s's face for comedic timing", d.Character)
		reactionDesc = fmt.Sprintf("%s: %q - %s. Hold for reaction.", d.Character, d.Text, d.Action)
	case strings.Contains(genre, "drama"):
		reactionPos = fmt.Sprintf("Close on %s, capturing vulnerability", d.Character)
		reactionDesc = fmt.Sprintf("%s: %q - %s. Let emotion land.", d.Character, d.Text, d.Action)
	default:
		reactionPos = fmt.Sprintf("Eye level, tight on %s's face", d.Character)
		reactionDesc = fmt.Sprintf("%s reacts: %q - %s", d.Character, d.Text, d.Action)
	}

	shots = append(shots, types.Shot{
		ShotID:                   shotID(scene.SceneNumber, 1),
		SceneNumber:              scene.SceneNumber,
		ShotSize:                 types.CloseUp,
		CameraPosition:           reactionPos,
		CameraMovement:           types.Static,
		VisualDescription:        reactionDesc,
		SuggestedDurationSeconds: reactionDur,
		AudioNotes:               fmt.Sprintf("Dialogue: %s", d.Character),
	})
	return shots
}

// coverageShots covers a regular scene: a wide establishing shot, then one
// shot per dialogue line alternating sizes for visual rhythm.
func coverageShots(scene types.Scene, genre string, sceneDuration int) []types.Shot {
	numShots := 1 + len(scene.Dialogues)
	perShot := sceneDuration / numShots
	if perShot < 2 {
		perShot = 2
	}

	var cameraNote string
	switch {
	case strings.Contains(genre, "comedy"):
		cameraNote = "Wide enough to capture physical comedy"
	case strings.Contains(genre, "drama"):
		cameraNote = "Composed for emotional weight"
	default:
		cameraNote = fmt.Sprintf("showing %s context", scene.Location)
	}

	shots := []types.Shot{{
		ShotID:                   shotID(scene.SceneNumber, 0),
		SceneNumber:              scene.SceneNumber,
		ShotSize:                 types.Wide,
		CameraPosition:           fmt.Sprintf("Eye level, %s", cameraNote),
		CameraMovement:           types.Static,
		VisualDescription:        fmt.Sprintf("Wide: %s. %s", scene.Location, scene.Description),
		SuggestedDurationSeconds: perShot,
	}}

	if len(scene.Dialogues) == 0 {
		// No dialogue: one action shot covers the remaining time
		shots = append(shots, types.Shot{
			ShotID:                   shotID(scene.SceneNumber, 1),
			SceneNumber:              scene.SceneNumber,
			ShotSize:                 types.Medium,
			CameraPosition:           "Eye level, following action",
			CameraMovement:           types.Static,
			VisualDescription:        fmt.Sprintf("Action: %s", scene.Description),
			SuggestedDurationSeconds: sceneDuration - perShot,
		})
		return shots
	}

	var timingNote string
	switch {
	case strings.Contains(genre, "comedy"):
		timingNote = " - timing is key, hold for laugh"
	case strings.Contains(genre, "drama"):
		timingNote = " - let emotion breathe"
	}

	for idx, d := range scene.Dialogues {
		var size types.ShotSize
		var position string
		switch {
		case idx == 0:
			size = types.Medium
			position = fmt.Sprintf("Medium shot, %s in frame", d.Character)
		case idx%2 == 1:
			size = types.CloseUp
			position = fmt.Sprintf("Close-up on %s's expression", d.Character)
		default:
			size = types.Medium
			position = fmt.Sprintf("Over-shoulder or medium on %s", d.Character)
		}

		actionDesc := ""
		if d.Action != "" {
			actionDesc = fmt.Sprintf(" - %s", d.Action)
		}

		shots = append(shots, types.Shot{
			ShotID:                   shotID(scene.SceneNumber, idx+1),
			SceneNumber:              scene.SceneNumber,
			ShotSize:                 size,
			CameraPosition:           position,
			CameraMovement:           types.Static,
			VisualDescription:        fmt.Sprintf("%s: %q%s%s", d.Character, d.Text, actionDesc, timingNote),
			SuggestedDurationSeconds: perShot,
			AudioNotes:               fmt.Sprintf("Dialogue: %s", d.Character),
		})
	}
	return shots
}
