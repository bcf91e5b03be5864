package dsp

import "sync/atomic"

type envState int

const (
	envIdle envState = iota
	envAttack
	envDecay
	envSustain
	envRelease
)

// Trigger is a value-typed handle that re-arms its owning Adsr from
// outside the audio callback, even if the gate parameter it also
// watches hasn't changed level. Voice re-triggers (the same key
// pressed twice in a row, with the gate never visibly dropping to 0
// between them) fire a Trigger rather than toggle the gate.
type Trigger struct {
	version *atomic.Uint64
}

// Fire requests a fresh attack on the next processed sample.
func (t Trigger) Fire() {
	if t.version != nil {
		t.version.Add(1)
	}
}

// Adsr is a four-stage envelope generator. Its output is the envelope
// level in [0, 1], not a gain-applied signal; pair it with a Gain node
// to shape an audio signal.
//
// Attack always ramps from the envelope's current level to 1 over the
// attack parameter's duration; Decay ramps 1 down to the sustain level
// over the decay duration; Release captures the level at the moment
// the gate drops (or a late release mid-attack/decay) and ramps that
// down to 0 over the release duration. A gate of 0 rising to nonzero
// starts Attack; a nonzero gate falling to 0 starts Release; a Trigger
// fire forces Attack regardless of the gate's current level.
type Adsr struct {
	gate, attack, decay, sustain, release AudioParam
	sampleRate                            float64

	state        envState
	level        float32
	lastGate     float32
	releaseStart float32

	version     atomic.Uint64
	lastVersion uint64
}

// NewAdsr builds an envelope driven by gate and the four stage-duration
// (or, for sustain, level) params.
func NewAdsr(gate, attack, decay, sustain, release AudioParam) *Adsr {
	return &Adsr{
		gate: gate, attack: attack, decay: decay, sustain: sustain, release: release,
		sampleRate: 44100,
		state:      envIdle,
	}
}

// CreateTrigger returns a handle that re-arms this envelope.
func (e *Adsr) CreateTrigger() Trigger {
	return Trigger{version: &e.version}
}

func (e *Adsr) SetSampleRate(rate float64) {
	e.sampleRate = rate
	e.gate.setSampleRate(rate)
	e.attack.setSampleRate(rate)
	e.decay.setSampleRate(rate)
	e.sustain.setSampleRate(rate)
	e.release.setSampleRate(rate)
}

func (e *Adsr) Latency() int { return 0 }

func (e *Adsr) Process(buf []float32, sampleIndex uint64) {
	e.gate.prepare(len(buf), sampleIndex)
	e.attack.prepare(len(buf), sampleIndex)
	e.decay.prepare(len(buf), sampleIndex)
	e.sustain.prepare(len(buf), sampleIndex)
	e.release.prepare(len(buf), sampleIndex)

	for i := range buf {
		g := e.gate.at(i)

		v := e.version.Load()
		retrig := v != e.lastVersion
		e.lastVersion = v

		switch {
		case g > 0 && e.lastGate <= 0:
			e.state = envAttack
		case g <= 0 && e.lastGate > 0:
			e.state = envRelease
			e.releaseStart = e.level
		case retrig:
			e.state = envAttack
		}
		e.lastGate = g

		switch e.state {
		case envAttack:
			a := e.attack.at(i)
			if a <= 0 || e.sampleRate <= 0 {
				e.level = 1
				e.state = envDecay
			} else {
				e.level += float32(1 / (float64(a) * e.sampleRate))
				if e.level >= 1 {
					e.level = 1
					e.state = envDecay
				}
			}
		case envDecay:
			d := e.decay.at(i)
			s := e.sustain.at(i)
			if d <= 0 || e.sampleRate <= 0 {
				e.level = s
				e.state = envSustain
			} else {
				e.level -= float32((1 - float64(s)) / (float64(d) * e.sampleRate))
				if e.level <= s {
					e.level = s
					e.state = envSustain
				}
			}
		case envSustain:
			e.level = e.sustain.at(i)
		case envRelease:
			r := e.release.at(i)
			if r <= 0 || e.sampleRate <= 0 {
				e.level = 0
				e.state = envIdle
			} else {
				e.level -= float32(float64(e.releaseStart) / (float64(r) * e.sampleRate))
				if e.level <= 0 {
					e.level = 0
					e.state = envIdle
				}
			}
		case envIdle:
			e.level = 0
		}

		buf[i] = e.level
	}
}
