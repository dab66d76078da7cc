package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ShotSize classifies framing from extreme wide to extreme close-up
type ShotSize string

const (
	ExtremeWide    ShotSize = "EWS"
	Wide           ShotSize = "WS"
	Medium         ShotSize = "MS"
	CloseUp        ShotSize = "CU"
	ExtremeCloseUp ShotSize = "ECU"
)

func (s ShotSize) Valid() bool {
	switch s {
	case ExtremeWide, Wide, Medium, CloseUp, ExtremeCloseUp:
		return true
	}
	return false
}

// CameraMovement is the movement type for a shot
type CameraMovement string

const (
	Static   CameraMovement = "Static"
	Pan      CameraMovement = "Pan"
	Tilt     CameraMovement = "Tilt"
	Dolly    CameraMovement = "Dolly"
	Tracking CameraMovement = "Tracking"
	Handheld CameraMovement = "Handheld"
	Crane    CameraMovement = "Crane"
)

// StoryboardDurationTolerance is the default allowed relative deviation
// between the storyboard's total shot duration and the script's target
// duration. The continuity gate reads the configured value; this is only
// the compiled default.
const StoryboardDurationTolerance = 0.20

// Shot is one continuous camera setup within a scene
type Shot struct {
	ShotID                   string         `json:"shot_id"` // e.g. "1A", "2B"
	SceneNumber              int            `json:"scene_number"`
	ShotSize                 ShotSize       `json:"shot_size"`
	CameraPosition           string         `json:"camera_position"`
	CameraMovement           CameraMovement `json:"camera_movement"`
	VisualDescription        string         `json:"visual_description"`
	SuggestedDurationSeconds int            `json:"suggested_duration_seconds"`
	AudioNotes               string         `json:"audio_notes,omitempty"`
}

// Validate checks a single shot
func (s Shot) Validate() error {
	if strings.TrimSpace(s.ShotID) == "" {
		return fmt.Errorf("shot ID cannot be empty")
	}
	if s.SceneNumber < 1 {
		return fmt.Errorf("scene number must be positive")
	}
	if strings.TrimSpace(s.CameraPosition) == "" {
		return fmt.Errorf("camera position cannot be empty")
	}
	if strings.TrimSpace(s.VisualDescription) == "" {
		return fmt.Errorf("visual description cannot be empty")
	}
	if s.SuggestedDurationSeconds < 1 {
		return fmt.Errorf("duration must be at least 1 second")
	}
	return nil
}

// Storyboard is the ordered shot list for a script
type Storyboard struct {
	ScriptTitle           string `json:"script_title"`
	TargetDurationSeconds int    `json:"target_duration_seconds"`
	Shots                 []Shot `json:"shots"`
}

// Validate checks shot validity and shot ID uniqueness. The duration
// tolerance is a tunable threshold, so it belongs to the continuity gate,
// not the model.
func (sb *Storyboard) Validate() error {
	if strings.TrimSpace(sb.ScriptTitle) == "" {
		return fmt.Errorf("script title cannot be empty")
	}
	if len(sb.Shots) == 0 {
		return fmt.Errorf("storyboard must have at least one shot")
	}
	seen := make(map[string]bool, len(sb.Shots))
	for _, shot := range sb.Shots {
		if err := shot.Validate(); err != nil {
			return fmt.Errorf("shot %s: %w", shot.ShotID, err)
		}
		if seen[shot.ShotID] {
			return fmt.Errorf("duplicate shot IDs found")
		}
		seen[shot.ShotID] = true
	}
	return nil
}

// TotalDuration sums the suggested durations of all shots
func (sb *Storyboard) TotalDuration() int {
	total := 0
	for _, shot := range sb.Shots {
		total += shot.SuggestedDurationSeconds
	}
	return total
}

// ToJSON renders the storyboard as indented JSON
func (sb *Storyboard) ToJSON() ([]byte, error) {
	return json.MarshalIndent(sb, "", "  ")
}

// StoryboardFromJSON parses a storyboard previously written by ToJSON
func StoryboardFromJSON(data []byte) (*Storyboard, error) {
	var sb Storyboard
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("parse storyboard JSON: %w", err)
	}
	return &sb, nil
}
