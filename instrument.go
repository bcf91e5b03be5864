package infinitetrak

// WaveformType selects the oscillator's wave shape.
type WaveformType int

const (
	Sine WaveformType = iota
	Square
	Saw
	Triangle
	Noise
)

// ModuleKind tags which fields of a ModuleConfig are meaningful.
type ModuleKind int

const (
	ModuleOscillator ModuleKind = iota
	ModuleFilter
	ModuleAdsr
	ModuleGain
)

// ModuleConfig is one stage of an instrument's signal chain. Only the
// fields relevant to Kind are meaningful; the voice builder (see
// internal/voice) reads them in declaration order.
type ModuleConfig struct {
	Kind ModuleKind `json:"kind"`

	// Oscillator
	Waveform       WaveformType `json:"waveform,omitempty"`
	PitchOffset    float32      `json:"pitchOffset,omitempty"` // semitones; declared but inert, see instrument defaults
	Detune         float32      `json:"detune,omitempty"`      // cents; declared but inert
	PitchEnvAmount float32      `json:"pitchEnvAmount,omitempty"`
	PitchEnvDecay  float32      `json:"pitchEnvDecay,omitempty"` // seconds

	// Filter
	Cutoff    float32 `json:"cutoff,omitempty"`    // Hz
	Resonance float32 `json:"resonance,omitempty"` // [0, 0.95]

	// Adsr
	Attack  float32 `json:"attack,omitempty"`  // seconds
	Decay   float32 `json:"decay,omitempty"`   // seconds
	Sustain float32 `json:"sustain,omitempty"` // [0, 1]
	Release float32 `json:"release,omitempty"` // seconds

	// Gain
	Level float32 `json:"level,omitempty"`
}

// Instrument is a named, ordered signal chain.
type Instrument struct {
	Name    string         `json:"name"`
	Modules []ModuleConfig `json:"modules"`
}

// DefaultInstrument mirrors the original core's Instrument::default: a
// plain sine voice with a general-purpose envelope and half gain,
// used to pad the instrument bank and as the starting point for new
// instruments created in the editor.
func DefaultInstrument() Instrument {
	return Instrument{
		Name: "Init",
		Modules: []ModuleConfig{
			{Kind: ModuleOscillator, Waveform: Sine, PitchEnvDecay: 0.1},
			{Kind: ModuleAdsr, Attack: 0.01, Decay: 0.1, Sustain: 0.8, Release: 0.2},
			{Kind: ModuleGain, Level: 0.5},
		},
	}
}
