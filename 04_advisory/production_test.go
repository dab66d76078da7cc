package advisory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	script "shortform-preprod/01_script"
	breakdown "shortform-preprod/02_breakdown"
	storyboard "shortform-preprod/03_storyboard"
	"shortform-preprod/config"
	"shortform-preprod/types"
)

func generatedArtifacts(t *testing.T, genre string, duration int) (*types.Script, *types.Breakdown, *types.Storyboard) {
	t.Helper()
	cfg := config.Default()
	ctx := context.Background()
	s, err := script.New(cfg).Run(ctx, types.Brief{
		Title:                 "Test Video",
		Genre:                 genre,
		Platform:              types.PlatformTikTok,
		TargetDurationSeconds: duration,
		TargetAudience:        "Adults",
	})
	require.NoError(t, err)
	b, err := breakdown.New(cfg).Run(ctx, s)
	require.NoError(t, err)
	sb, err := storyboard.New(cfg).Run(ctx, s, b)
	require.NoError(t, err)
	return s, b, sb
}

func TestProductionNotes(t *testing.T) {
	gen := NewProduction(config.Default())

	t.Run("generated notes meet the default minimum item count", func(t *testing.T) {
		s, b, sb := generatedArtifacts(t, "Drama", 60)
		notes, err := gen.Run(context.Background(), s, b, sb)
		require.NoError(t, err)
		assert.NoError(t, notes.Validate())
		assert.GreaterOrEqual(t, notes.ItemCount(), types.MinAdvisoryItems)
		assert.Equal(t, s.Title, notes.ScriptTitle)
	})

	t.Run("recurring character triggers a wardrobe risk", func(t *testing.T) {
		s, b, sb := generatedArtifacts(t, "Drama", 60)
		notes, err := gen.Run(context.Background(), s, b, sb)
		require.NoError(t, err)

		require.NotEmpty(t, notes.ContinuityRisks)
		risk := notes.ContinuityRisks[0]
		assert.Equal(t, types.PriorityHigh, risk.Priority)
		assert.Contains(t, risk.Description, "Wardrobe continuity for Elena")
		assert.NotEmpty(t, risk.ActionableSteps)
	})

	t.Run("dialogue yields a high-priority audio recommendation", func(t *testing.T) {
		s, b, sb := generatedArtifacts(t, "Comedy", 60)
		notes, err := gen.Run(context.Background(), s, b, sb)
		require.NoError(t, err)

		require.NotEmpty(t, notes.AudioRecommendations)
		assert.Equal(t, types.PriorityHigh, notes.AudioRecommendations[0].Priority)
		assert.Contains(t, notes.AudioRecommendations[0].Description, "Dialogue recording")
	})

	t.Run("exterior scenes get exactly one exterior audio warning", func(t *testing.T) {
		b := &types.Breakdown{
			ScriptTitle: "Test",
			Entries: []types.BreakdownEntry{
				{SceneNumber: 1, LocationType: types.Exterior},
				{SceneNumber: 2, LocationType: types.Exterior},
			},
		}
		s := &types.Script{Scenes: []types.Scene{{SceneNumber: 1}}}
		recs := audioRecommendations(s, b)

		exterior := 0
		for _, rec := range recs {
			if rec.Description == "Exterior audio challenges for Scene 1" {
				exterior++
			}
		}
		assert.Equal(t, 1, exterior)
	})

	t.Run("coverage always includes B-roll first", func(t *testing.T) {
		_, _, sb := generatedArtifacts(t, "Drama", 60)
		suggestions := coverageSuggestions(sb)
		require.NotEmpty(t, suggestions)
		assert.Contains(t, suggestions[0].Description, "B-roll")
		assert.Equal(t, types.PriorityHigh, suggestions[0].Priority)
	})

	t.Run("thin scenes are flagged for limited coverage", func(t *testing.T) {
		sb := &types.Storyboard{
			ScriptTitle:           "Test",
			TargetDurationSeconds: 10,
			Shots: []types.Shot{
				{ShotID: "1A", SceneNumber: 1, SuggestedDurationSeconds: 5},
				{ShotID: "1B", SceneNumber: 1, SuggestedDurationSeconds: 5},
			},
		}
		suggestions := coverageSuggestions(sb)
		found := false
		for _, sug := range suggestions {
			if sug.Description == "Scene 1 has limited coverage (2 shots)" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestPostProductionNotes(t *testing.T) {
	gen := NewPostProduction(config.Default())

	t.Run("generated notes meet the default minimum item count", func(t *testing.T) {
		s, _, sb := generatedArtifacts(t, "Drama", 60)
		notes, err := gen.Run(context.Background(), s, sb)
		require.NoError(t, err)
		assert.NoError(t, notes.Validate())
		assert.GreaterOrEqual(t, notes.ItemCount(), types.MinAdvisoryItems)
	})

	t.Run("hook scene produces a retention suggestion", func(t *testing.T) {
		s, _, sb := generatedArtifacts(t, "Drama", 60)
		notes, err := gen.Run(context.Background(), s, sb)
		require.NoError(t, err)

		require.NotEmpty(t, notes.EditingSuggestions)
		assert.Contains(t, notes.EditingSuggestions[0].Description, "Hook optimization")
	})

	t.Run("short target gets short-form pacing advice", func(t *testing.T) {
		s := &types.Script{TargetDurationSeconds: 45}
		suggestions := editingSuggestions(s)
		found := false
		for _, sug := range suggestions {
			if sug.Description == "Short-form pacing and rhythm" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("long target skips short-form pacing advice", func(t *testing.T) {
		s := &types.Script{TargetDurationSeconds: 90}
		for _, sug := range editingSuggestions(s) {
			assert.NotEqual(t, "Short-form pacing and rhythm", sug.Description)
		}
	})

	t.Run("vertical platforms get a format guideline", func(t *testing.T) {
		s := &types.Script{Platform: types.PlatformTikTok}
		guidelines := platformGuidelines(s)
		require.NotEmpty(t, guidelines)
		assert.Equal(t, "TIKTOK vertical format optimization", guidelines[0].Description)
	})

	t.Run("youtube shorts has no vertical guideline", func(t *testing.T) {
		s := &types.Script{Platform: types.PlatformYouTubeShorts}
		for _, g := range platformGuidelines(s) {
			assert.NotContains(t, g.Description, "vertical format")
		}
	})

	t.Run("revision pitfalls are always three items", func(t *testing.T) {
		pitfalls := revisionPitfalls()
		require.Len(t, pitfalls, 3)
		for _, p := range pitfalls {
			assert.NoError(t, p.Validate())
		}
	})
}
