package breakdown

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// Generator derives a per-scene production breakdown from a script
type Generator struct {
	cfg *config.Config
}

// New creates a new breakdown Generator
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Setup-time model: a flat base per scene plus surcharges for the things
// that slow a crew down.
const (
	baseSetupMinutes     = 15
	exteriorSetupMinutes = 10
	nightSetupMinutes    = 20
	perCharacterMinutes  = 5
)

// Run builds a Breakdown from a valid script. An invalid script is a hard
// failure; no partial breakdown is produced.
func (g *Generator) Run(ctx context.Context, s *types.Script) (*types.Breakdown, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	log.Printf("[breakdown] Breaking down %d scenes...", len(s.Scenes))

	entries := make([]types.BreakdownEntry, 0, len(s.Scenes))
	for _, scene := range s.Scenes {
		entries = append(entries, buildEntry(scene))
	}

	b := &types.Breakdown{
		ScriptTitle: s.Title,
		Entries:     entries,
	}
	log.Printf("[breakdown] ✅ Breakdown ready: %d entries", len(b.Entries))
	return b, nil
}

func buildEntry(scene types.Scene) types.BreakdownEntry {
	characters := speakingCharacters(scene)
	return types.BreakdownEntry{
		SceneNumber:               scene.SceneNumber,
		SceneDescription:          scene.Description,
		Location:                  scene.Location,
		LocationType:              scene.InteriorExterior,
		TimeOfDay:                 scene.TimeOfDay,
		Characters:                characters,
		Props:                     extractProps(scene),
		Wardrobe:                  extractWardrobe(scene, characters),
		Makeup:                    extractMakeup(scene),
		SpecialRequirements:       extractSpecialRequirements(scene),
		EstimatedSetupTimeMinutes: estimateSetupTime(scene),
	}
}

// speakingCharacters returns distinct dialogue speakers in order of first
// appearance, keeping regeneration deterministic.
func speakingCharacters(scene types.Scene) []string {
	var characters []string
	seen := make(map[string]bool)
	for _, d := range scene.Dialogues {
		if !seen[d.Character] {
			seen[d.Character] = true
			characters = append(characters, d.Character)
		}
	}
	return characters
}

// propKeywords maps description keywords to the prop they imply
var propKeywords = []struct {
	keywords []string
	element  types.ProductionElement
}{
	{[]string{"phone", "mobile"}, types.ProductionElement{ElementType: "prop", Description: "Mobile phone", Quantity: 1}},
	{[]string{"coffee", "cup"}, types.ProductionElement{ElementType: "prop", Description: "Coffee cup", Quantity: 1}},
	{[]string{"table"}, types.ProductionElement{ElementType: "prop", Description: "Table", Quantity: 1}},
	{[]string{"chair"}, types.ProductionElement{ElementType: "prop", Description: "Chair", Quantity: 2}},
	{[]string{"car", "vehicle"}, types.ProductionElement{ElementType: "prop", Description: "Vehicle", Quantity: 1, Notes: "Requires driver/permit"}},
}

func extractProps(scene types.Scene) []types.ProductionElement {
	var props []types.ProductionElement
	desc := strings.ToLower(scene.Description)

	for _, rule := range propKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				props = append(props, rule.element)
				break
			}
		}
	}

	// Dialogue can imply props the description never mentions
	for _, d := range scene.Dialogues {
		if strings.Contains(strings.ToLower(d.Text), "drink") && !hasProp(props, "Coffee cup") {
			props = append(props, types.ProductionElement{ElementType: "prop", Description: "Beverage", Quantity: 1})
		}
	}
	return props
}

func hasProp(props []types.ProductionElement, description string) bool {
	for _, p := range props {
		if p.Description == description {
			return true
		}
	}
	return false
}

func extractWardrobe(scene types.Scene, characters []string) []types.ProductionElement {
	var wardrobe []types.ProductionElement
	for _, character := range characters {
		wardrobe = append(wardrobe, types.ProductionElement{
			ElementType: "wardrobe",
			Description: fmt.Sprintf("%s costume", character),
			Quantity:    1,
			Notes:       "Character-appropriate attire",
		})
	}

	desc := strings.ToLower(scene.Description)
	if strings.Contains(desc, "formal") || strings.Contains(desc, "suit") {
		wardrobe = append(wardrobe, types.ProductionElement{ElementType: "wardrobe", Description: "Formal attire", Quantity: 1})
	}
	if strings.Contains(desc, "uniform") {
		wardrobe = append(wardrobe, types.ProductionElement{ElementType: "wardrobe", Description: "Uniform", Quantity: 1})
	}
	return wardrobe
}

func extractMakeup(scene types.Scene) []types.ProductionElement {
	// Every scene gets a baseline pass; keywords add specialty work
	makeup := []types.ProductionElement{
		{ElementType: "makeup", Description: "Basic makeup", Quantity: 1, Notes: "For all characters"},
	}

	desc := strings.ToLower(scene.Description)
	if strings.Contains(desc, "blood") || strings.Contains(desc, "injury") {
		makeup = append(makeup, types.ProductionElement{ElementType: "makeup", Description: "Special effects makeup", Quantity: 1, Notes: "Injury/blood effects"})
	}
	if strings.Contains(desc, "age") || strings.Contains(desc, "old") {
		makeup = append(makeup, types.ProductionElement{ElementType: "makeup", Description: "Aging makeup", Quantity: 1})
	}
	return makeup
}

func extractSpecialRequirements(scene types.Scene) []types.ProductionElement {
	var special []types.ProductionElement
	desc := strings.ToLower(scene.Description)

	if strings.Contains(desc, "stunt") || strings.Contains(desc, "fight") {
		special = append(special, types.ProductionElement{ElementType: "sfx", Description: "Stunt coordinator", Quantity: 1, Notes: "Safety required"})
	}
	if strings.Contains(desc, "explosion") || strings.Contains(desc, "fire") {
		special = append(special, types.ProductionElement{ElementType: "sfx", Description: "Pyrotechnics", Quantity: 1, Notes: "Permit and safety officer required"})
	}
	if strings.Contains(desc, "rain") || strings.Contains(desc, "water") {
		special = append(special, types.ProductionElement{ElementType: "sfx", Description: "Water effects", Quantity: 1})
	}
	if strings.Contains(desc, "animal") || strings.Contains(desc, "dog") || strings.Contains(desc, "cat") {
		special = append(special, types.ProductionElement{ElementType: "sfx", Description: "Animal wrangler", Quantity: 1, Notes: "Trained animals required"})
	}
	if strings.Contains(desc, "vfx") || strings.Contains(desc, "cgi") || strings.Contains(desc, "green screen") {
		special = append(special, types.ProductionElement{ElementType: "sfx", Description: "Visual effects", Quantity: 1, Notes: "Post-production VFX required"})
	}
	return special
}

func estimateSetupTime(scene types.Scene) int {
	minutes := baseSetupMinutes
	if scene.InteriorExterior == types.Exterior {
		minutes += exteriorSetupMinutes
	}
	if scene.TimeOfDay == types.TimeNight {
		minutes += nightSetupMinutes
	}
	minutes += len(speakingCharacters(scene)) * perCharacterMinutes
	return minutes
}
