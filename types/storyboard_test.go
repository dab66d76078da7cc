package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStoryboard() *Storyboard {
	return &Storyboard{
		ScriptTitle:           "The Last Train",
		TargetDurationSeconds: 60,
		Shots: []Shot{
			{ShotID: "1A", SceneNumber: 1, ShotSize: Medium, CameraPosition: "Eye level", CameraMovement: Static, VisualDescription: "Elena on the platform", SuggestedDurationSeconds: 2},
			{ShotID: "1B", SceneNumber: 1, ShotSize: CloseUp, CameraPosition: "Slightly low angle", CameraMovement: Static, VisualDescription: "Reaction", SuggestedDurationSeconds: 3},
			{ShotID: "2A", SceneNumber: 2, ShotSize: Wide, CameraPosition: "High angle", CameraMovement: Static, VisualDescription: "The bench", SuggestedDurationSeconds: 55},
		},
	}
}

func TestStoryboardValidate(t *testing.T) {
	t.Run("valid storyboard passes", func(t *testing.T) {
		assert.NoError(t, validStoryboard().Validate())
	})

	t.Run("duplicate shot IDs", func(t *testing.T) {
		sb := validStoryboard()
		sb.Shots[1].ShotID = "1A"
		assert.ErrorContains(t, sb.Validate(), "duplicate shot IDs")
	})

	t.Run("shot with zero duration", func(t *testing.T) {
		sb := validStoryboard()
		sb.Shots[0].SuggestedDurationSeconds = 0
		assert.ErrorContains(t, sb.Validate(), "at least 1 second")
	})

	t.Run("duration deviation is not a model concern", func(t *testing.T) {
		// The tolerance is configurable, so the continuity gate owns it
		sb := validStoryboard()
		sb.Shots[2].SuggestedDurationSeconds = 10 // total 15s vs 60s target
		assert.NoError(t, sb.Validate())
	})
}

func TestStoryboardJSONRoundTrip(t *testing.T) {
	sb := validStoryboard()
	data, err := sb.ToJSON()
	require.NoError(t, err)

	got, err := StoryboardFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, sb, got)
}

func TestAdvisoryItemValidate(t *testing.T) {
	item := AdvisoryItem{
		Category:        "continuity",
		Priority:        PriorityHigh,
		Description:     "Elena appears in 2 scenes",
		ActionableSteps: []string{"Photograph wardrobe"},
	}
	assert.NoError(t, item.Validate())

	item.Priority = "URGENT"
	assert.ErrorContains(t, item.Validate(), "invalid priority")

	item.Priority = PriorityLow
	item.ActionableSteps = nil
	assert.ErrorContains(t, item.Validate(), "actionable step")
}

func TestProductionNotesValidate(t *testing.T) {
	item := AdvisoryItem{Category: "audio", Priority: PriorityMedium, Description: "Capture wild sound", ActionableSteps: []string{"Record 30s room tone"}}
	notes := &ProductionNotes{
		ScriptTitle:          "The Last Train",
		AudioRecommendations: []AdvisoryItem{item, item},
		CoverageSuggestions:  []AdvisoryItem{{Category: "coverage", Priority: PriorityHigh, Description: "Shoot B-roll", ActionableSteps: []string{"Capture inserts"}}},
	}
	assert.NoError(t, notes.Validate())
	assert.Equal(t, 3, notes.ItemCount())

	notes.AudioRecommendations[0].Priority = "URGENT"
	assert.ErrorContains(t, notes.Validate(), "invalid priority")

	notes.ScriptTitle = ""
	assert.ErrorContains(t, notes.Validate(), "script title")
}
