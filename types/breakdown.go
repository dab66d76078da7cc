package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ProductionElement is one item a scene needs on set (prop, wardrobe, etc.)
type ProductionElement struct {
	ElementType string `json:"element_type"` // prop | wardrobe | makeup | sfx | ...
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
}

// BreakdownEntry is the production inventory for a single scene
type BreakdownEntry struct {
	SceneNumber               int                 `json:"scene_number"`
	SceneDescription          string              `json:"scene_description"`
	Location                  string              `json:"location"`
	LocationType              LocationType        `json:"location_type"`
	TimeOfDay                 TimeOfDay           `json:"time_of_day"`
	Characters                []string            `json:"characters"`
	Props                     []ProductionElement `json:"props"`
	Wardrobe                  []ProductionElement `json:"wardrobe"`
	Makeup                    []ProductionElement `json:"makeup"`
	SpecialRequirements       []ProductionElement `json:"special_requirements"`
	EstimatedSetupTimeMinutes int                 `json:"estimated_setup_time_minutes,omitempty"`
}

// Validate checks a single breakdown entry
func (e BreakdownEntry) Validate() error {
	if e.SceneNumber < 1 {
		return fmt.Errorf("scene number must be positive")
	}
	if strings.TrimSpace(e.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if strings.TrimSpace(e.SceneDescription) == "" {
		return fmt.Errorf("scene description cannot be empty")
	}
	if len(e.Characters) == 0 {
		return fmt.Errorf("scene %d must have at least one character", e.SceneNumber)
	}
	return nil
}

// Breakdown is the full per-scene production breakdown for a script
type Breakdown struct {
	ScriptTitle string           `json:"script_title"`
	Entries     []BreakdownEntry `json:"entries"`
}

// Validate checks the breakdown's own invariants: every entry valid and
// scene numbers forming an unbroken 1..N sequence.
func (b *Breakdown) Validate() error {
	if strings.TrimSpace(b.ScriptTitle) == "" {
		return fmt.Errorf("script title cannot be empty")
	}
	if len(b.Entries) == 0 {
		return fmt.Errorf("breakdown must have at least one entry")
	}
	for _, e := range b.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	numbers := make([]int, 0, len(b.Entries))
	seen := make(map[int]bool, len(b.Entries))
	for _, e := range b.Entries {
		if seen[e.SceneNumber] {
			return fmt.Errorf("duplicate scene numbers found in breakdown")
		}
		seen[e.SceneNumber] = true
		numbers = append(numbers, e.SceneNumber)
	}
	sort.Ints(numbers)
	for i, n := range numbers {
		if n != i+1 {
			return fmt.Errorf("scene numbers must be sequential starting from 1")
		}
	}
	return nil
}

// ToJSON renders the breakdown as indented JSON
func (b *Breakdown) ToJSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// BreakdownFromJSON parses a breakdown previously written by ToJSON
func BreakdownFromJSON(data []byte) (*Breakdown, error) {
	var b Breakdown
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse breakdown JSON: %w", err)
	}
	return &b, nil
}
