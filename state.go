package infinitetrak

import (
	"math"
	"sync"
)

// PlayMode selects transport behavior. Song is reserved: the reference
// scheduler never differentiates it from Pattern (see internal/engine),
// so it is carried here purely so saved projects round-trip the field.
type PlayMode int

const (
	PlayModePattern PlayMode = iota
	PlayModeSong
)

// PreviewRequest is the single-slot mailbox the editor uses to audition
// a note outside the transport. Key 0 means release; Key > 0 triggers.
type PreviewRequest struct {
	Channel int
	Key     uint8
}

// SharedState is the mutex-protected musical state exchanged between the
// editor thread and the audio thread. Callers must hold the embedded
// mutex (via Lock/Unlock, or a higher-level helper) around any read or
// write; the audio engine only ever locks it for the brief, O(NumChannels)
// critical section described in internal/engine.
type SharedState struct {
	sync.Mutex

	Patterns       []Pattern
	CurrentPattern int
	Instruments    [NumInstruments]Instrument
	CurrentRow     int
	IsPlaying      bool
	PlayMode       PlayMode
	BPM            float64
	SamplesPerTick int
	// CurrentTickSamples counts samples elapsed in the current tick; it
	// satisfies 0 <= CurrentTickSamples < SamplesPerTick after a call to
	// TrackerEngine.Process returns while IsPlaying is true. While stopped
	// it is left as is; NewSharedState sets it to SamplesPerTick so the
	// first playing callback ticks at once.
	CurrentTickSamples int
	// PreviewRequest is non-nil exactly when the editor has an
	// unserviced preview request pending; the engine clears it on the
	// next callback regardless of outcome.
	PreviewRequest *PreviewRequest
}

// SamplesPerTick computes round(sampleRate * 60 / (bpm * 4)), the number
// of audio samples in one row at the given tempo.
func SamplesPerTick(sampleRate float64, bpm float64) int {
	if bpm <= 0 {
		bpm = 120
	}
	return int(math.Round(sampleRate * 60 / (bpm * float64(RowsPerBeat))))
}

// NewSharedState creates a fresh, stopped project at the given tempo and
// sample rate, seeded with the original core's starter instrument bank
// (instruments[0:8]) padded out to NumInstruments with DefaultInstrument,
// and a single empty pattern.
func NewSharedState(bpm float64, sampleRate float64) *SharedState {
	spt := SamplesPerTick(sampleRate, bpm)

	var instruments [NumInstruments]Instrument
	for i := range instruments {
		instruments[i] = DefaultInstrument()
	}
	for i, inst := range defaultInstrumentBank() {
		instruments[i] = inst
	}

	return &SharedState{
		Patterns:           []Pattern{NewPattern()},
		CurrentPattern:     0,
		Instruments:        instruments,
		CurrentRow:         0,
		IsPlaying:          false,
		PlayMode:           PlayModePattern,
		BPM:                bpm,
		SamplesPerTick:     spt,
		CurrentTickSamples: spt,
		PreviewRequest:     nil,
	}
}
