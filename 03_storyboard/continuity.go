package storyboard

import (
	"math"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// ContinuityChecker validates a storyboard against its script for coverage,
// duration tolerance and editing continuity.
type ContinuityChecker struct {
	cfg *config.Config
}

// NewContinuityChecker creates a new ContinuityChecker
func NewContinuityChecker(cfg *config.Config) *ContinuityChecker {
	return &ContinuityChecker{cfg: cfg}
}

// Check runs the continuity gate
func (c *ContinuityChecker) Check(sb *types.Storyboard, s *types.Script) types.Report {
	var report types.Report

	if err := sb.Validate(); err != nil {
		report.Add("%v", err)
		return report.Finish()
	}

	scriptScenes := make(map[int]bool, len(s.Scenes))
	for _, scene := range s.Scenes {
		scriptScenes[scene.SceneNumber] = true
	}
	for _, shot := range sb.Shots {
		if !scriptScenes[shot.SceneNumber] {
			report.Add("Shot %s: References non-existent scene %d", shot.ShotID, shot.SceneNumber)
		}
	}

	// Two adjacent shots in the same scene with identical framing will read
	// as a jump cut in the edit.
	for i := 1; i < len(sb.Shots); i++ {
		prev, cur := sb.Shots[i-1], sb.Shots[i]
		if prev.SceneNumber == cur.SceneNumber &&
			prev.ShotSize == cur.ShotSize &&
			prev.CameraPosition == cur.CameraPosition {
			report.Add("Shots %s and %s: Potential jump cut (same size and position)", prev.ShotID, cur.ShotID)
		}
	}

	total := sb.TotalDuration()
	deviation := math.Abs(float64(total-sb.TargetDurationSeconds)) / float64(sb.TargetDurationSeconds)
	if deviation > c.cfg.Validation.StoryboardDurationTolerance {
		report.Add("Total duration (%ds) deviates %.1f%% from target (%ds), exceeds %.0f%% tolerance",
			total, deviation*100, sb.TargetDurationSeconds, c.cfg.Validation.StoryboardDurationTolerance*100)
	}

	shotCounts := make(map[int]int)
	for _, shot := range sb.Shots {
		shotCounts[shot.SceneNumber]++
	}
	for _, scene := range s.Scenes {
		switch n := shotCounts[scene.SceneNumber]; {
		case n == 0:
			report.Add("Scene %d: No shots defined", scene.SceneNumber)
		case n < 2:
			report.Add("Scene %d: Insufficient coverage (only 1 shot)", scene.SceneNumber)
		}
	}

	return report.Finish()
}
