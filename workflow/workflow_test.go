package workflow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

func testBrief() types.Brief {
	return types.Brief{
		Title:                 "Test Video",
		Genre:                 "Drama",
		Platform:              types.PlatformTikTok,
		TargetDurationSeconds: 60,
		TargetAudience:        "Adults",
	}
}

func TestWorkflowRun(t *testing.T) {
	cfg := config.Default()
	wf := New(cfg)

	t.Run("full run produces all artifacts", func(t *testing.T) {
		dir := t.TempDir()
		result := wf.Run(context.Background(), testBrief(), dir)

		require.True(t, result.Success, "errors: %v", result.Errors)
		assert.Empty(t, result.Errors)

		wantKeys := []string{
			"script", "breakdown_json", "breakdown_csv",
			"storyboard", "shotlist", "production_notes", "postproduction_notes",
		}
		require.Len(t, result.OutputFiles, len(wantKeys))
		for _, key := range wantKeys {
			path, ok := result.OutputFiles[key]
			require.True(t, ok, "missing artifact %s", key)
			_, err := os.Stat(path)
			assert.NoError(t, err, "artifact %s not on disk", key)
		}

		report := VerifyOutput(dir)
		assert.True(t, report.Valid, "issues: %v", report.Issues)
	})

	t.Run("artifact names derive from the title", func(t *testing.T) {
		dir := t.TempDir()
		result := wf.Run(context.Background(), testBrief(), dir)
		require.True(t, result.Success)
		assert.Equal(t, filepath.Join(dir, "Test_Video_script.json"), result.OutputFiles["script"])
	})

	t.Run("script artifact round-trips and honors duration", func(t *testing.T) {
		dir := t.TempDir()
		result := wf.Run(context.Background(), testBrief(), dir)
		require.True(t, result.Success)

		data, err := os.ReadFile(result.OutputFiles["script"])
		require.NoError(t, err)
		s, err := types.ScriptFromJSON(data)
		require.NoError(t, err)
		assert.NoError(t, s.Validate())
		assert.Equal(t, 60, s.TotalEstimatedDuration())
	})

	t.Run("storyboard duration stays within tolerance", func(t *testing.T) {
		dir := t.TempDir()
		result := wf.Run(context.Background(), testBrief(), dir)
		require.True(t, result.Success)

		data, err := os.ReadFile(filepath.Join(dir, "Test_Video_storyboard.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Storyboard: Test Video")
	})

	t.Run("invalid brief fails at stage one with no artifacts", func(t *testing.T) {
		dir := t.TempDir()
		brief := testBrief()
		brief.TargetDurationSeconds = 10

		result := wf.Run(context.Background(), brief, dir)
		assert.False(t, result.Success)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0], "Stage 1 Script")
		assert.Empty(t, result.OutputFiles)
	})

	t.Run("pipeline state is written even on failure", func(t *testing.T) {
		dir := t.TempDir()
		brief := testBrief()
		brief.Genre = ""
		result := wf.Run(context.Background(), brief, dir)
		assert.False(t, result.Success)

		data, err := os.ReadFile(filepath.Join(dir, "pipeline_state.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"run_id"`)
		assert.Contains(t, string(data), `"errors"`)
	})

	t.Run("raised advisory minimum fails the acceptance gate", func(t *testing.T) {
		cfg := config.Default()
		cfg.Validation.MinAdvisoryItems = 100

		result := New(cfg).Run(context.Background(), testBrief(), t.TempDir())
		assert.False(t, result.Success)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0], "at least 100 actionable items")

		// Stages 1-3 completed, so their artifacts are kept
		assert.Contains(t, result.OutputFiles, "script")
		assert.Contains(t, result.OutputFiles, "shotlist")
		assert.NotContains(t, result.OutputFiles, "production_notes")
	})

	t.Run("relaxed storyboard tolerance is honored end to end", func(t *testing.T) {
		cfg := config.Default()
		cfg.Validation.StoryboardDurationTolerance = 0.90

		result := New(cfg).Run(context.Background(), testBrief(), t.TempDir())
		assert.True(t, result.Success, "errors: %v", result.Errors)
	})

	t.Run("empty output dir gets a per-run directory", func(t *testing.T) {
		root := t.TempDir()
		cfg := config.Default()
		cfg.Paths.Output = root

		result := New(cfg).Run(context.Background(), testBrief(), "")
		require.True(t, result.Success, "errors: %v", result.Errors)

		dir := filepath.Dir(result.OutputFiles["script"])
		assert.Equal(t, root, filepath.Dir(dir))
	})
}

func TestVerifyOutput(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		report := VerifyOutput(filepath.Join(t.TempDir(), "nope"))
		assert.False(t, report.Valid)
		require.Len(t, report.Issues, 1)
		assert.Contains(t, report.Issues[0], "does not exist")
	})

	t.Run("incomplete directory lists missing patterns", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "X_script.json"), []byte("{}"), 0644))

		report := VerifyOutput(dir)
		assert.False(t, report.Valid)
		assert.Len(t, report.Issues, len(ExpectedArtifacts)-1)
	})
}
