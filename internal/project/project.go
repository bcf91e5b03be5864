// Package project saves and loads tracker projects as JSON, using
// json-iterator/go in its encoding/json-compatible mode.
package project

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"infinitetrak"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Project is the on-disk representation of a tracker session: tempo,
// every pattern, and the full instrument bank.
type Project struct {
	BPM         float64                   `json:"bpm"`
	Patterns    []infinitetrak.Pattern    `json:"patterns"`
	Instruments []infinitetrak.Instrument `json:"instruments"`

	// Pattern is a legacy single-pattern field written by older project
	// files that predate multi-pattern songs. Load folds it into
	// Patterns[0] when Patterns is empty; Save never writes it.
	Pattern *infinitetrak.Pattern `json:"pattern,omitempty"`
}

// FromState snapshots a SharedState into a Project ready to Save.
// Callers must hold state's lock.
func FromState(state *infinitetrak.SharedState) Project {
	instruments := make([]infinitetrak.Instrument, len(state.Instruments))
	copy(instruments, state.Instruments[:])
	patterns := make([]infinitetrak.Pattern, len(state.Patterns))
	copy(patterns, state.Patterns)
	return Project{
		BPM:         state.BPM,
		Patterns:    patterns,
		Instruments: instruments,
	}
}

// ApplyTo writes p's contents into state, padding the instrument bank
// out to infinitetrak.NumInstruments and ensuring at least one pattern
// exists. Callers must hold state's lock.
func (p Project) ApplyTo(state *infinitetrak.SharedState) {
	state.BPM = p.BPM
	state.SamplesPerTick = infinitetrak.SamplesPerTick(44100, p.BPM)

	patterns := p.Patterns
	if len(patterns) == 0 && p.Pattern != nil {
		patterns = []infinitetrak.Pattern{*p.Pattern}
	}
	if len(patterns) == 0 {
		patterns = []infinitetrak.Pattern{infinitetrak.NewPattern()}
	}
	state.Patterns = patterns
	state.CurrentPattern = 0
	state.CurrentRow = 0

	var instruments [infinitetrak.NumInstruments]infinitetrak.Instrument
	for i := range instruments {
		instruments[i] = infinitetrak.DefaultInstrument()
	}
	for i, inst := range p.Instruments {
		if i >= infinitetrak.NumInstruments {
			break
		}
		instruments[i] = inst
	}
	state.Instruments = instruments
}

// Save writes p to path as indented JSON.
func Save(path string, p Project) error {
	data, err := jsonAPI.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("project: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("project: write %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a project file.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("project: read %s: %w", path, err)
	}
	var p Project
	if err := jsonAPI.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("project: unmarshal %s: %w", path, err)
	}
	return p, nil
}
