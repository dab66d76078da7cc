package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Platform is the short-form platform the video is produced for
type Platform string

const (
	PlatformTikTok         Platform = "tiktok"
	PlatformKuaishou       Platform = "kuaishou"
	PlatformYouTubeShorts  Platform = "youtube_shorts"
	PlatformInstagramReels Platform = "instagram_reels"
)

// ParsePlatform converts a string into a known Platform
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformTikTok:
		return PlatformTikTok, nil
	case PlatformKuaishou:
		return PlatformKuaishou, nil
	case PlatformYouTubeShorts:
		return PlatformYouTubeShorts, nil
	case PlatformInstagramReels:
		return PlatformInstagramReels, nil
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformTikTok, PlatformKuaishou, PlatformYouTubeShorts, PlatformInstagramReels:
		return true
	}
	return false
}

// TimeOfDay is the slugline time for a scene
type TimeOfDay string

const (
	TimeDay   TimeOfDay = "DAY"
	TimeNight TimeOfDay = "NIGHT"
	TimeDawn  TimeOfDay = "DAWN"
	TimeDusk  TimeOfDay = "DUSK"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeDay, TimeNight, TimeDawn, TimeDusk:
		return true
	}
	return false
}

// LocationType is the slugline INT/EXT marker
type LocationType string

const (
	Interior LocationType = "INT"
	Exterior LocationType = "EXT"
)

func (l LocationType) Valid() bool {
	return l == Interior || l == Exterior
}

// MaxDialogueChars caps a single dialogue line
const MaxDialogueChars = 500

// Dialogue is one spoken line, optionally with a stage direction
type Dialogue struct {
	Character string `json:"character"`
	Text      string `json:"text"`
	Action    string `json:"action,omitempty"`
}

// Validate checks the dialogue line on its own
func (d Dialogue) Validate() error {
	if strings.TrimSpace(d.Character) == "" {
		return fmt.Errorf("character name cannot be empty")
	}
	if strings.TrimSpace(d.Text) == "" {
		return fmt.Errorf("dialogue text cannot be empty")
	}
	if len(d.Text) > MaxDialogueChars {
		return fmt.Errorf("dialogue text too long (max %d characters)", MaxDialogueChars)
	}
	return nil
}

// Character is a named role in the script
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AgeRange    string `json:"age_range,omitempty"`
}

func (c Character) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("character name cannot be empty")
	}
	return nil
}

// Scene is one scene of the script
type Scene struct {
	SceneNumber              int          `json:"scene_number"`
	Location                 string       `json:"location"`
	TimeOfDay                TimeOfDay    `json:"time_of_day"`
	InteriorExterior         LocationType `json:"interior_exterior"`
	Description              string       `json:"description"`
	Dialogues                []Dialogue   `json:"dialogues"`
	EstimatedDurationSeconds int          `json:"estimated_duration_seconds,omitempty"`
	IsHook                   bool         `json:"is_hook,omitempty"`
}

// Validate checks the scene and every dialogue in it
func (s Scene) Validate() error {
	if s.SceneNumber < 1 {
		return fmt.Errorf("scene number must be positive")
	}
	if strings.TrimSpace(s.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if !s.TimeOfDay.Valid() {
		return fmt.Errorf("invalid time_of_day: %q", s.TimeOfDay)
	}
	if !s.InteriorExterior.Valid() {
		return fmt.Errorf("invalid interior_exterior: %q", s.InteriorExterior)
	}
	for _, d := range s.Dialogues {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("scene %d: %w", s.SceneNumber, err)
		}
	}
	return nil
}

// CostFlag marks a production element that raises cost or complexity
type CostFlag struct {
	ElementType         string `json:"element_type"`
	Description         string `json:"description"`
	EstimatedComplexity string `json:"estimated_complexity"` // LOW | MEDIUM | HIGH
}

// Duration bounds for short-form scripts
const (
	MinTargetDurationSeconds = 30
	MaxTargetDurationSeconds = 120
)

// Script is the complete generated script for one video
type Script struct {
	Title                 string      `json:"title"`
	Genre                 string      `json:"genre"`
	Platform              Platform    `json:"platform"`
	TargetDurationSeconds int         `json:"target_duration_seconds"`
	TargetAudience        string      `json:"target_audience"`
	Characters            []Character `json:"characters"`
	Scenes                []Scene     `json:"scenes"`
	CostFlags             []CostFlag  `json:"cost_flags"`
}

// Validate checks the script's structural invariants: duration range,
// hook placement, per-scene validity and dialogue/character consistency.
func (s *Script) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if strings.TrimSpace(s.Genre) == "" {
		return fmt.Errorf("genre cannot be empty")
	}
	if !s.Platform.Valid() {
		return fmt.Errorf("invalid platform: %q", s.Platform)
	}
	if s.TargetDurationSeconds < MinTargetDurationSeconds || s.TargetDurationSeconds > MaxTargetDurationSeconds {
		return fmt.Errorf("target duration must be between %d-%d seconds", MinTargetDurationSeconds, MaxTargetDurationSeconds)
	}
	if strings.TrimSpace(s.TargetAudience) == "" {
		return fmt.Errorf("target audience cannot be empty")
	}
	if len(s.Scenes) == 0 {
		return fmt.Errorf("script must have at least one scene")
	}

	// The hook has to land in the first couple of seconds of the video,
	// so it must be one of the first two scenes.
	hook := false
	for i, scene := range s.Scenes {
		if i >= 2 {
			break
		}
		if scene.IsHook {
			hook = true
		}
	}
	if !hook {
		return fmt.Errorf("script must have a hook in the first scene")
	}

	// Name is the key dialogue lines reference, so it must be unique
	charSeen := make(map[string]bool, len(s.Characters))
	for _, c := range s.Characters {
		if err := c.Validate(); err != nil {
			return err
		}
		if charSeen[c.Name] {
			return fmt.Errorf("duplicate character name %q", c.Name)
		}
		charSeen[c.Name] = true
	}

	seen := make(map[int]bool, len(s.Scenes))
	for _, scene := range s.Scenes {
		if err := scene.Validate(); err != nil {
			return err
		}
		if seen[scene.SceneNumber] {
			return fmt.Errorf("duplicate scene number %d", scene.SceneNumber)
		}
		seen[scene.SceneNumber] = true
	}
	for n := 1; n <= len(s.Scenes); n++ {
		if !seen[n] {
			return fmt.Errorf("scene numbers must be sequential starting from 1")
		}
	}

	names := make(map[string]bool, len(s.Characters))
	for _, c := range s.Characters {
		names[c.Name] = true
	}
	for _, scene := range s.Scenes {
		for _, d := range scene.Dialogues {
			if !names[d.Character] {
				return fmt.Errorf("character %q in scene %d not in character list", d.Character, scene.SceneNumber)
			}
		}
	}
	return nil
}

// TotalEstimatedDuration sums the scenes' estimated durations
func (s *Script) TotalEstimatedDuration() int {
	total := 0
	for _, scene := range s.Scenes {
		total += scene.EstimatedDurationSeconds
	}
	return total
}

// ToJSON renders the script as indented JSON
func (s *Script) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ScriptFromJSON parses a script previously written by ToJSON
func ScriptFromJSON(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script JSON: %w", err)
	}
	return &s, nil
}
