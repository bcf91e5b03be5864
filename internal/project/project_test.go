package project

import (
	"path/filepath"
	"testing"

	"infinitetrak"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	state := infinitetrak.NewSharedState(140, 44100)
	state.Patterns[0].Rows[0][0].Key = 60

	p := FromState(state)
	path := filepath.Join(t.TempDir(), "song.trk.json")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BPM != 140 {
		t.Fatalf("BPM = %v, want 140", loaded.BPM)
	}
	if loaded.Patterns[0].Rows[0][0].Key != 60 {
		t.Fatalf("expected round-tripped note to survive")
	}
}

func TestApplyToPadsInstrumentBank(t *testing.T) {
	p := Project{
		BPM:         100,
		Instruments: []infinitetrak.Instrument{{Name: "Solo"}},
	}
	state := infinitetrak.NewSharedState(120, 44100)
	p.ApplyTo(state)

	if state.Instruments[0].Name != "Solo" {
		t.Fatalf("Instruments[0].Name = %q, want Solo", state.Instruments[0].Name)
	}
	if state.Instruments[1].Name != "Init" {
		t.Fatalf("Instruments[1].Name = %q, want Init (default padding)", state.Instruments[1].Name)
	}
	if len(state.Patterns) != 1 {
		t.Fatalf("expected ApplyTo to synthesize a default pattern when none present")
	}
}

func TestApplyToFallsBackToLegacyPatternField(t *testing.T) {
	legacy := infinitetrak.NewPattern()
	legacy.Rows[2][1].Key = 64
	p := Project{BPM: 90, Pattern: &legacy}

	state := infinitetrak.NewSharedState(120, 44100)
	p.ApplyTo(state)

	if len(state.Patterns) != 1 {
		t.Fatalf("expected legacy pattern field to become Patterns[0]")
	}
	if state.Patterns[0].Rows[2][1].Key != 64 {
		t.Fatalf("expected legacy pattern contents to survive ApplyTo")
	}
}
