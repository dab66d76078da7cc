package script

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shortform-preprod/config"
	"shortform-preprod/types"
)

// Generator builds a Script from a creative brief using fixed genre tables
type Generator struct {
	cfg *config.Config
}

// New creates a new script Generator
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// beat names the three structural positions every script moves through
type beat string

const (
	beatHook        beat = "hook"
	beatDevelopment beat = "development"
	beatResolution  beat = "resolution"
)

// line is a dialogue text paired with its stage direction
type line struct {
	text   string
	action string
}

// genreRule is the full content table for one genre family. Rules are
// matched in order against the lowercased genre string; the first rule
// whose every keyword appears wins.
type genreRule struct {
	keywords     []string
	characters   []types.Character
	descriptions map[beat]string
	locations    map[beat]string
	dialogue     map[beat]line
}

var genreRules = []genreRule{
	{
		keywords: []string{"romantic", "comedy"},
		characters: []types.Character{
			{Name: "Maya", Description: "Barista with a secret talent", AgeRange: "22-28"},
			{Name: "Alex", Description: "Regular customer, tech startup founder", AgeRange: "25-30"},
		},
		descriptions: map[beat]string{
			beatHook:        "The moment everything shifts - a simple mistake becomes a catalyst",
			beatDevelopment: "Vulnerability surfaces through nervous explanation, walls coming down",
			beatResolution:  "Mutual recognition - what seemed wrong was exactly right",
		},
		locations: map[beat]string{
			beatHook:        "Coffee Shop - Counter",
			beatDevelopment: "Coffee Shop - Corner Table",
			beatResolution:  "Coffee Shop - Window Seat",
		},
		dialogue: map[beat]line{
			beatHook:        {"Wait, you ordered a what?!", "freezes mid-pour, eyes wide with genuine surprise"},
			beatDevelopment: {"You've been ordering the same drink for three months. I thought I'd surprise you.", "nervous laugh, fidgets with cup sleeve, can't quite meet their eyes"},
			beatResolution:  {"Best wrong order ever.", "genuine smile breaks through, eyes soften with warmth"},
		},
	},
	{
		keywords: []string{"comedy"},
		characters: []types.Character{
			{Name: "Jordan", Description: "Optimistic dreamer", AgeRange: "20-28"},
			{Name: "Sam", Description: "Sarcastic best friend", AgeRange: "20-28"},
		},
		descriptions: map[beat]string{
			beatHook:        "Disaster strikes in the most mundane moment - chaos begins",
			beatDevelopment: "Attempting damage control while digging deeper into absurdity",
			beatResolution:  "Acceptance of chaos, finding humor in the wreckage",
		},
		locations: map[beat]string{
			beatHook:        "Apartment - Kitchen",
			beatDevelopment: "Apartment - Living Room",
			beatResolution:  "Apartment - Balcony",
		},
		dialogue: map[beat]line{
			beatHook:        {"This is NOT how I planned my morning.", "stares at chaos, deadpan delivery"},
			beatDevelopment: {"Okay, so maybe I should have read the instructions first.", "awkward laugh that trails off, realizes the magnitude"},
			beatResolution:  {"Well, at least it's a good story now.", "laughs genuinely, tension releases"},
		},
	},
	{
		keywords: []string{"drama"},
		characters: []types.Character{
			{Name: "Elena", Description: "Determined protagonist", AgeRange: "25-35"},
			{Name: "Marcus", Description: "Mysterious stranger", AgeRange: "30-40"},
		},
		descriptions: map[beat]string{
			beatHook:        "The past collides with present - no more running",
			beatDevelopment: "Truth emerges after years of silence, courage to speak",
			beatResolution:  "Catharsis - the weight of unspoken words finally lifted",
		},
		locations: map[beat]string{
			beatHook:        "Train Station Platform",
			beatDevelopment: "Train Station Bench",
			beatResolution:  "Train Station Exit",
		},
		dialogue: map[beat]line{
			beatHook:        {"I can't believe you're actually here.", "voice cracks slightly, frozen in doorway"},
			beatDevelopment: {"I've been trying to find the right words for weeks.", "takes a shaky breath, steps closer with purpose"},
			beatResolution:  {"I'm glad I finally said it.", "exhales deeply, shoulders drop, relieved smile"},
		},
	},
	{
		keywords: []string{"horror"},
		characters: []types.Character{
			{Name: "Riley", Description: "Skeptical investigator", AgeRange: "25-32"},
		},
		descriptions: map[beat]string{
			beatHook:        "Something's wrong - instinct screams danger",
			beatDevelopment: "Dread builds, rational mind fights primal fear",
			beatResolution:  "Confrontation with the unknown, survival instinct takes over",
		},
		dialogue: map[beat]line{
			beatHook:        {"Did you hear that?", "stops dead, breath held, listening intently"},
			beatDevelopment: {"There's something I need to tell you.", "steadies voice, gathering courage"},
			beatResolution:  {"And that's how everything changed.", "looks directly at camera, knowing smile"},
		},
	},
	{
		keywords: []string{"thriller"},
		characters: []types.Character{
			{Name: "Riley", Description: "Skeptical investigator", AgeRange: "25-32"},
		},
		descriptions: map[beat]string{
			beatHook:        "The first crack in normalcy - something's off",
			beatDevelopment: "Paranoia or perception? Trust erodes",
			beatResolution:  "Truth revealed, reality shifts permanently",
		},
		dialogue: map[beat]line{
			beatHook:        {"Did you hear that?", "stops dead, breath held, listening intently"},
			beatDevelopment: {"There's something I need to tell you.", "steadies voice, gathering courage"},
			beatResolution:  {"And that's how everything changed.", "looks directly at camera, knowing smile"},
		},
	},
}

// defaultRule is the fallback for genres no keyword rule matches
var defaultRule = genreRule{
	characters: []types.Character{
		{Name: "Taylor", Description: "Relatable protagonist", AgeRange: "22-30"},
	},
	descriptions: map[beat]string{
		beatHook:        "Opening moment - immediate engagement",
		beatDevelopment: "Story deepens, stakes rise",
		beatResolution:  "Emotional payoff, transformation complete",
	},
	dialogue: map[beat]line{
		beatHook:        {"Everything changes right now.", "locks eyes with camera, jaw set"},
		beatDevelopment: {"There's something I need to tell you.", "steadies voice, gathering courage"},
		beatResolution:  {"And that's how everything changed.", "looks directly at camera, knowing smile"},
	},
}

// ruleFor picks the first genre rule whose keywords all appear in the genre
func ruleFor(genre string) genreRule {
	lower := strings.ToLower(genre)
	for _, rule := range genreRules {
		match := true
		for _, kw := range rule.keywords {
			if !strings.Contains(lower, kw) {
				match = false
				break
			}
		}
		if match {
			return rule
		}
	}
	return defaultRule
}

// location returns the rule's location for a beat, or a generic fallback
func (r genreRule) location(b beat) string {
	if loc, ok := r.locations[b]; ok {
		return loc
	}
	name := string(b)
	return fmt.Sprintf("Location - %s%s", strings.ToUpper(name[:1]), name[1:])
}

// Run generates a complete Script from the brief. The generator itself does
// not reject its own output; malformed structure is the validator's job.
func (g *Generator) Run(ctx context.Context, brief types.Brief) (*types.Script, error) {
	if err := brief.Validate(); err != nil {
		return nil, fmt.Errorf("invalid brief: %w", err)
	}
	log.Printf("[script] Generating %q (%s, %ds, %s)...", brief.Title, brief.Genre, brief.TargetDurationSeconds, brief.Platform)

	rule := ruleFor(brief.Genre)
	scenes := g.buildScenes(rule, brief.Concept, brief.TargetDurationSeconds)
	flags := identifyCostFlags(scenes)

	s := &types.Script{
		Title:                 brief.Title,
		Genre:                 brief.Genre,
		Platform:              brief.Platform,
		TargetDurationSeconds: brief.TargetDurationSeconds,
		TargetAudience:        brief.TargetAudience,
		Characters:            rule.characters,
		Scenes:                scenes,
		CostFlags:             flags,
	}

	log.Printf("[script] ✅ Script ready: %d characters, %d scenes, %d cost flags",
		len(s.Characters), len(s.Scenes), len(s.CostFlags))
	return s, nil
}

// buildScenes lays out hook, optional development, and resolution scenes
// over the target duration.
func (g *Generator) buildScenes(rule genreRule, concept string, targetDuration int) []types.Scene {
	lead := rule.characters[0].Name

	// A supplied concept leads the hook description so its keywords reach
	// the downstream breakdown extraction.
	hookDesc := rule.descriptions[beatHook]
	if concept != "" {
		hookDesc = fmt.Sprintf("%s - %s", concept, hookDesc)
	}

	hookLine := rule.dialogue[beatHook]
	scenes := []types.Scene{{
		SceneNumber:              1,
		Location:                 rule.location(beatHook),
		TimeOfDay:                types.TimeDay,
		InteriorExterior:         types.Interior,
		Description:              hookDesc,
		Dialogues:                []types.Dialogue{{Character: lead, Text: hookLine.text, Action: hookLine.action}},
		EstimatedDurationSeconds: g.cfg.Script.HookDurationSeconds,
		IsHook:                   true,
	}}

	remaining := targetDuration - g.cfg.Script.HookDurationSeconds

	if targetDuration >= g.cfg.Script.DevelopmentThresholdSeconds {
		devDuration := remaining / 2
		devLine := rule.dialogue[beatDevelopment]
		scenes = append(scenes, types.Scene{
			SceneNumber:              2,
			Location:                 rule.location(beatDevelopment),
			TimeOfDay:                types.TimeDay,
			InteriorExterior:         types.Interior,
			Description:              rule.descriptions[beatDevelopment],
			Dialogues:                []types.Dialogue{{Character: lead, Text: devLine.text, Action: devLine.action}},
			EstimatedDurationSeconds: devDuration,
		})
		remaining -= devDuration
	}

	// The resolution takes whatever time is left, bounded below so a short
	// remainder cannot produce a degenerate closing scene.
	if remaining < g.cfg.Script.MinResolutionSeconds {
		remaining = g.cfg.Script.MinResolutionSeconds
	}
	resLine := rule.dialogue[beatResolution]
	scenes = append(scenes, types.Scene{
		SceneNumber:              len(scenes) + 1,
		Location:                 rule.location(beatResolution),
		TimeOfDay:                types.TimeDay,
		InteriorExterior:         types.Interior,
		Description:              rule.descriptions[beatResolution],
		Dialogues:                []types.Dialogue{{Character: lead, Text: resLine.text, Action: resLine.action}},
		EstimatedDurationSeconds: remaining,
	})

	return scenes
}

// identifyCostFlags scans scenes for elements that raise production cost
func identifyCostFlags(scenes []types.Scene) []types.CostFlag {
	var flags []types.CostFlag
	for _, scene := range scenes {
		if scene.TimeOfDay == types.TimeNight {
			flags = append(flags, types.CostFlag{
				ElementType:         "night_scene",
				Description:         fmt.Sprintf("Scene %d: Night shooting requires additional lighting", scene.SceneNumber),
				EstimatedComplexity: "MEDIUM",
			})
		}
		if scene.InteriorExterior == types.Exterior {
			flags = append(flags, types.CostFlag{
				ElementType:         "location",
				Description:         fmt.Sprintf("Scene %d: Exterior location may require permits", scene.SceneNumber),
				EstimatedComplexity: "LOW",
			})
		}
		if len(scene.Dialogues) > 3 {
			flags = append(flags, types.CostFlag{
				ElementType:         "extras",
				Description:         fmt.Sprintf("Scene %d: Multiple speaking characters increase complexity", scene.SceneNumber),
				EstimatedComplexity: "MEDIUM",
			})
		}
	}
	return flags
}
