// Package dsp is a small, self-contained real-time signal processing
// library: lock-free parameters, a tagged audio-rate/control-rate
// parameter type, a FrameProcessor contract, a series/parallel-mix
// chain, and a handful of synthesis and effect nodes. Nothing in this
// package depends on the tracker data model; internal/voice wires the
// two together.
package dsp

import (
	"math"
	"sync/atomic"
)

// Parameter is a lock-free scalar cell: one thread sets it, another
// reads it, with no locking and no tearing. float32 values are bit-cast
// into an atomic.Uint32, the same trick the teacher's EQ5Band uses for
// its per-band gain controls.
type Parameter struct {
	bits atomic.Uint32
}

// NewParameter returns a Parameter initialized to v.
func NewParameter(v float32) *Parameter {
	p := &Parameter{}
	p.Set(v)
	return p
}

// Set stores v. Safe to call from any goroutine.
func (p *Parameter) Set(v float32) {
	p.bits.Store(math.Float32bits(v))
}

// Get loads the current value. Safe to call from any goroutine.
func (p *Parameter) Get() float32 {
	return math.Float32frombits(p.bits.Load())
}
