package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScript() *Script {
	return &Script{
		Title:                 "The Last Train",
		Genre:                 "Drama",
		Platform:              PlatformTikTok,
		TargetDurationSeconds: 60,
		TargetAudience:        "Young Adults",
		Characters: []Character{
			{Name: "Elena", Description: "Determined protagonist"},
			{Name: "Marcus", Description: "Mysterious stranger"},
		},
		Scenes: []Scene{
			{
				SceneNumber:              1,
				Location:                 "Train Station Platform",
				TimeOfDay:                TimeDay,
				InteriorExterior:         Exterior,
				Description:              "The past collides with present",
				Dialogues:                []Dialogue{{Character: "Elena", Text: "I can't believe you're actually here."}},
				EstimatedDurationSeconds: 5,
				IsHook:                   true,
			},
			{
				SceneNumber:              2,
				Location:                 "Train Station Bench",
				TimeOfDay:                TimeDay,
				InteriorExterior:         Exterior,
				Description:              "Truth emerges",
				Dialogues:                []Dialogue{{Character: "Marcus", Text: "I've been trying to find the right words."}},
				EstimatedDurationSeconds: 55,
			},
		},
	}
}

func TestScriptValidate(t *testing.T) {
	t.Run("valid script passes", func(t *testing.T) {
		assert.NoError(t, validScript().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Script)
		wantErr string
	}{
		{
			name:    "empty title",
			mutate:  func(s *Script) { s.Title = "  " },
			wantErr: "title cannot be empty",
		},
		{
			name:    "unknown platform",
			mutate:  func(s *Script) { s.Platform = "vine" },
			wantErr: "invalid platform",
		},
		{
			name:    "duration below minimum",
			mutate:  func(s *Script) { s.TargetDurationSeconds = 15 },
			wantErr: "target duration must be between",
		},
		{
			name:    "duration above maximum",
			mutate:  func(s *Script) { s.TargetDurationSeconds = 300 },
			wantErr: "target duration must be between",
		},
		{
			name:    "no scenes",
			mutate:  func(s *Script) { s.Scenes = nil },
			wantErr: "at least one scene",
		},
		{
			name: "hook missing from first two scenes",
			mutate: func(s *Script) {
				s.Scenes[0].IsHook = false
			},
			wantErr: "hook in the first scene",
		},
		{
			name: "duplicate scene numbers",
			mutate: func(s *Script) {
				s.Scenes[1].SceneNumber = 1
			},
			wantErr: "duplicate scene number 1",
		},
		{
			name: "non-sequential scene numbers",
			mutate: func(s *Script) {
				s.Scenes[1].SceneNumber = 5
			},
			wantErr: "sequential",
		},
		{
			name: "duplicate character names",
			mutate: func(s *Script) {
				s.Characters = append(s.Characters, Character{Name: "Elena"})
			},
			wantErr: `duplicate character name "Elena"`,
		},
		{
			name: "dialogue by undeclared character",
			mutate: func(s *Script) {
				s.Scenes[1].Dialogues[0].Character = "Ghost"
			},
			wantErr: `character "Ghost" in scene 2`,
		},
		{
			name: "invalid time of day",
			mutate: func(s *Script) {
				s.Scenes[0].TimeOfDay = "NOON"
			},
			wantErr: "invalid time_of_day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScript()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHookAllowedInSecondScene(t *testing.T) {
	s := validScript()
	s.Scenes[0].IsHook = false
	s.Scenes[1].IsHook = true
	assert.NoError(t, s.Validate())
}

func TestDialogueValidate(t *testing.T) {
	d := Dialogue{Character: "Elena", Text: "Hello."}
	assert.NoError(t, d.Validate())

	d.Text = ""
	assert.Error(t, d.Validate())

	long := make([]byte, MaxDialogueChars+1)
	for i := range long {
		long[i] = 'a'
	}
	d.Text = string(long)
	assert.ErrorContains(t, d.Validate(), "too long")
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform(" TikTok ")
	require.NoError(t, err)
	assert.Equal(t, PlatformTikTok, p)

	_, err = ParsePlatform("vine")
	assert.Error(t, err)
}

func TestScriptJSONRoundTrip(t *testing.T) {
	s := validScript()
	data, err := s.ToJSON()
	require.NoError(t, err)

	got, err := ScriptFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestTotalEstimatedDuration(t *testing.T) {
	assert.Equal(t, 60, validScript().TotalEstimatedDuration())
}
