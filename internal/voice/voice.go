// Package voice builds and drives the per-channel modular DSP chain
// described by an instrument definition. A Voice owns the live
// Parameter cells behind its chain's knobs, so the editor can push
// parameter edits into a playing voice without tearing down its
// envelope or oscillator phase, and only rebuilds the chain outright
// when the instrument's module topology itself changes.
package voice

import (
	"math"

	"infinitetrak"
	"infinitetrak/internal/dsp"
)

// MidiToFreq converts a MIDI note number to frequency in Hz using the
// standard equal-temperament formula, A4 (69) = 440Hz. Key 0 has no
// defined pitch; callers must not reach it with Key == 0.
func MidiToFreq(key uint8) float32 {
	return float32(440 * math.Pow(2, (float64(key)-69)/12))
}

// moduleCells holds the live Parameter cells wired into one module's
// dsp nodes, so UpdateParams can push new values without rebuilding.
type moduleCells struct {
	cutoff, resonance                *dsp.Parameter
	attack, decay, sustain, release  *dsp.Parameter
	level                            *dsp.Parameter
	pitchEnvAmount, pitchEnvDecay    *dsp.Parameter
}

type topoKey struct {
	kind infinitetrak.ModuleKind
	wave infinitetrak.WaveformType
}

// Voice is one channel's live instrument instance: a DSP chain built
// from an Instrument's ModuleConfig list, plus the shared pitch and
// gate cells every module in the chain reads from.
type Voice struct {
	chain      *dsp.DspChain
	pitch      *dsp.Parameter
	gate       *dsp.Parameter
	triggers   []dsp.Trigger
	cells      []moduleCells
	topology   []topoKey
	sampleRate float64
}

// NewVoice builds a Voice at the given sample rate with no instrument
// loaded; call Build before Process.
func NewVoice(sampleRate float64) *Voice {
	return &Voice{
		pitch:      dsp.NewParameter(0),
		gate:       dsp.NewParameter(0),
		sampleRate: sampleRate,
	}
}

func signature(modules []infinitetrak.ModuleConfig) []topoKey {
	sig := make([]topoKey, len(modules))
	for i, m := range modules {
		sig[i] = topoKey{kind: m.Kind, wave: m.Waveform}
	}
	return sig
}

func sameTopology(a, b []topoKey) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Build constructs a fresh DSP chain from modules, discarding any
// previous chain, triggers and parameter cells. The pitch and gate
// cells keep their current values and the new envelopes start idle;
// callers that need a re-triggered note after Build should call
// Trigger afterward.
func (v *Voice) Build(modules []infinitetrak.ModuleConfig) {
	v.chain = dsp.NewDspChain(v.sampleRate)
	v.triggers = nil
	v.cells = make([]moduleCells, len(modules))
	v.topology = signature(modules)

	for i, m := range modules {
		v.addModule(i, m)
	}
}

// UpdateParams applies a new instrument definition to an already-built
// voice. If the module sequence's kind/waveform signature matches what
// is currently built, every numeric field is pushed into the live
// Parameter cells in place, preserving oscillator phase, filter state
// and envelope position. Otherwise the chain is rebuilt from scratch
// via Build, which resets envelope, oscillator and filter state.
func (v *Voice) UpdateParams(modules []infinitetrak.ModuleConfig) {
	if v.chain != nil && sameTopology(v.topology, signature(modules)) {
		for i, m := range modules {
			c := &v.cells[i]
			switch m.Kind {
			case infinitetrak.ModuleOscillator:
				c.pitchEnvAmount.Set(m.PitchEnvAmount)
				c.pitchEnvDecay.Set(maxFloat32(m.PitchEnvDecay, tinyDuration))
			case infinitetrak.ModuleFilter:
				c.cutoff.Set(m.Cutoff)
				c.resonance.Set(m.Resonance)
			case infinitetrak.ModuleAdsr:
				c.attack.Set(maxFloat32(m.Attack, 0))
				c.decay.Set(maxFloat32(m.Decay, 0))
				c.sustain.Set(m.Sustain)
				c.release.Set(maxFloat32(m.Release, tinyDuration))
			case infinitetrak.ModuleGain:
				c.level.Set(m.Level)
			}
		}
		return
	}
	v.Build(modules)
}

func maxFloat32(v, floor float32) float32 {
	if v < floor {
		return floor
	}
	return v
}

// tinyDuration is the floor applied to Adsr release times and to the
// pitch-envelope decay (attack and decay of the amplitude envelope are
// only floored at 0), so that a zero-duration release still takes a
// handful of samples instead of
// producing a single-sample step (which reads as a click).
const tinyDuration = 0.0005

func (v *Voice) addModule(i int, m infinitetrak.ModuleConfig) {
	cells := &v.cells[i]

	switch m.Kind {
	case infinitetrak.ModuleOscillator:
		cells.pitchEnvAmount = dsp.NewParameter(m.PitchEnvAmount)
		cells.pitchEnvDecay = dsp.NewParameter(maxFloat32(m.PitchEnvDecay, tinyDuration))

		pitchEnv := dsp.NewAdsr(
			dsp.LinkedParam(v.gate),
			dsp.StaticParam(0),
			dsp.LinkedParam(cells.pitchEnvDecay),
			dsp.StaticParam(0),
			dsp.StaticParam(0),
		)
		v.triggers = append(v.triggers, pitchEnv.CreateTrigger())

		envChain := dsp.NewDspChain(v.sampleRate)
		envChain.And(pitchEnv)

		pitchMod := dsp.NewDspChain(v.sampleRate)
		pitchMod.And(dsp.NewDcSource(dsp.LinkedParam(cells.pitchEnvAmount)))
		pitchMod.And(dsp.NewGain(dsp.DynamicParam(envChain)))

		freqChain := dsp.NewDspChain(v.sampleRate)
		freqChain.And(dsp.NewDcSource(dsp.LinkedParam(v.pitch)))
		freqChain.AndMix(1, pitchMod)

		osc := dsp.NewOscillator(dsp.DynamicParam(freqChain), toWaveform(m.Waveform))
		v.chain.And(osc)

	case infinitetrak.ModuleFilter:
		cells.cutoff = dsp.NewParameter(m.Cutoff)
		cells.resonance = dsp.NewParameter(m.Resonance)
		v.chain.And(dsp.NewLadderFilter(dsp.LinkedParam(cells.cutoff), dsp.LinkedParam(cells.resonance)))

	case infinitetrak.ModuleAdsr:
		cells.attack = dsp.NewParameter(maxFloat32(m.Attack, 0))
		cells.decay = dsp.NewParameter(maxFloat32(m.Decay, 0))
		cells.sustain = dsp.NewParameter(m.Sustain)
		cells.release = dsp.NewParameter(maxFloat32(m.Release, tinyDuration))

		amp := dsp.NewAdsr(
			dsp.LinkedParam(v.gate),
			dsp.LinkedParam(cells.attack),
			dsp.LinkedParam(cells.decay),
			dsp.LinkedParam(cells.sustain),
			dsp.LinkedParam(cells.release),
		)
		v.triggers = append(v.triggers, amp.CreateTrigger())

		ampChain := dsp.NewDspChain(v.sampleRate)
		ampChain.And(amp)
		v.chain.And(dsp.NewGain(dsp.DynamicParam(ampChain)))

	case infinitetrak.ModuleGain:
		cells.level = dsp.NewParameter(m.Level)
		v.chain.And(dsp.NewGain(dsp.LinkedParam(cells.level)))
	}
}

func toWaveform(w infinitetrak.WaveformType) dsp.Waveform {
	switch w {
	case infinitetrak.Square:
		return dsp.WaveSquare
	case infinitetrak.Saw:
		return dsp.WaveSaw
	case infinitetrak.Triangle:
		return dsp.WaveTriangle
	case infinitetrak.Noise:
		return dsp.WaveNoise
	default:
		return dsp.WaveSine
	}
}

// Trigger starts a fresh note at key: pitch is set, gate opens, and
// every envelope in the chain (amplitude and any pitch envelopes) is
// force-restarted via its Trigger handle, even if the gate was already
// open from a still-ringing previous note.
func (v *Voice) Trigger(key uint8) {
	v.pitch.Set(MidiToFreq(key))
	v.gate.Set(1)
	for _, tr := range v.triggers {
		tr.Fire()
	}
}

// Legato changes pitch without touching the gate or firing triggers,
// so the envelope continues uninterrupted into the new pitch.
func (v *Voice) Legato(key uint8) {
	v.pitch.Set(MidiToFreq(key))
}

// Release closes the gate, sending every envelope in the chain into
// its release stage.
func (v *Voice) Release() {
	v.gate.Set(0)
}

// IsBuilt reports whether Build has constructed a chain yet.
func (v *Voice) IsBuilt() bool {
	return v.chain != nil
}

// SetSampleRate propagates a sample rate change into the chain.
func (v *Voice) SetSampleRate(rate float64) {
	v.sampleRate = rate
	if v.chain != nil {
		v.chain.SetSampleRate(rate)
	}
}

// Process renders len(buf) samples of this voice's output, starting
// at absolute sample position sampleIndex.
func (v *Voice) Process(buf []float32, sampleIndex uint64) {
	if v.chain == nil {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	v.chain.Process(buf, sampleIndex)
}
