package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBreakdown() *Breakdown {
	return &Breakdown{
		ScriptTitle: "The Last Train",
		Entries: []BreakdownEntry{
			{
				SceneNumber:      1,
				SceneDescription: "The past collides with present",
				Location:         "Train Station Platform",
				LocationType:     Exterior,
				TimeOfDay:        TimeDay,
				Characters:       []string{"Elena"},
				Wardrobe:         []ProductionElement{{ElementType: "wardrobe", Description: "Elena - outfit", Quantity: 1}},
			},
			{
				SceneNumber:      2,
				SceneDescription: "Truth emerges",
				Location:         "Train Station Bench",
				LocationType:     Exterior,
				TimeOfDay:        TimeDay,
				Characters:       []string{"Elena", "Marcus"},
				Wardrobe:         []ProductionElement{{ElementType: "wardrobe", Description: "Marcus - outfit", Quantity: 1}},
			},
		},
	}
}

func TestBreakdownValidate(t *testing.T) {
	t.Run("valid breakdown passes", func(t *testing.T) {
		assert.NoError(t, validBreakdown().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Breakdown)
		wantErr string
	}{
		{
			name:    "empty title",
			mutate:  func(b *Breakdown) { b.ScriptTitle = "" },
			wantErr: "script title cannot be empty",
		},
		{
			name:    "no entries",
			mutate:  func(b *Breakdown) { b.Entries = nil },
			wantErr: "at least one entry",
		},
		{
			name:    "entry with no characters",
			mutate:  func(b *Breakdown) { b.Entries[0].Characters = nil },
			wantErr: "at least one character",
		},
		{
			name:    "duplicate scene numbers",
			mutate:  func(b *Breakdown) { b.Entries[1].SceneNumber = 1 },
			wantErr: "duplicate scene numbers",
		},
		{
			name:    "gap in scene numbers",
			mutate:  func(b *Breakdown) { b.Entries[1].SceneNumber = 7 },
			wantErr: "sequential",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBreakdown()
			tt.mutate(b)
			err := b.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBreakdownJSONRoundTrip(t *testing.T) {
	b := validBreakdown()
	data, err := b.ToJSON()
	require.NoError(t, err)

	got, err := BreakdownFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}
