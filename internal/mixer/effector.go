// Package mixer implements the tracker's master bus: a fixed, global
// stereo post-processing chain applied after every channel has been
// mixed down, in both offline render and live playback. Unlike a
// channel's instrument chain, the master bus has no per-note
// automation; it is configured once per project and run on the
// finished stereo mix.
package mixer

import "math"

// Effector processes one stereo sample pair in place.
type Effector interface {
	Process(l, r float32) (float32, float32)
	Reset()
}

// Chain runs a sequence of Effectors one after another.
type Chain struct {
	effects []Effector
}

// NewChain builds a chain from zero or more effects, run in order.
func NewChain(effects ...Effector) *Chain {
	return &Chain{effects: effects}
}

// Add appends an effect to the end of the chain.
func (c *Chain) Add(e Effector) {
	c.effects = append(c.effects, e)
}

func (c *Chain) Process(l, r float32) (float32, float32) {
	for _, e := range c.effects {
		l, r = e.Process(l, r)
	}
	return l, r
}

func (c *Chain) Reset() {
	for _, e := range c.effects {
		e.Reset()
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// limiterCeiling is where the bus's output safety stage starts
// softening peaks. A channel chain can already push samples outside
// [-1, 1] (feedback delay, compressor makeup gain, distortion post
// gain), and unlike a single instrument voice, the bus has nothing
// downstream to hard-clip it before it reaches the audio device in
// the live-playback path, so the bus applies its own soft limiter
// after the effect chain regardless of project configuration.
const limiterCeiling = 0.89

// softLimit rounds off a peak above limiterCeiling with tanh instead
// of hard-clipping it, so a momentary overshoot from the effect chain
// doesn't add harsh distortion on top of whatever the chain already
// did.
func softLimit(v float32) float32 {
	mag := v
	sign := float32(1)
	if mag < 0 {
		mag = -mag
		sign = -1
	}
	if mag <= limiterCeiling {
		return v
	}
	over := (mag - limiterCeiling) / (1 - limiterCeiling)
	return sign * (limiterCeiling + (1-limiterCeiling)*float32(math.Tanh(float64(over))))
}
