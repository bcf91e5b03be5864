package dsp

import "math"

// LadderFilter is a four-pole resonant low-pass, the classic cascaded
// one-pole-stages-plus-feedback topology. Cutoff is clamped to
// (0, sampleRate/2) and resonance to [0, 0.95] every sample, and the
// fed-back last stage passes through tanh, so the feedback term stays
// within ±3.8 and the output stays bounded even at a cutoff near
// Nyquist, where the linear loop alone would diverge.
type LadderFilter struct {
	cutoff, resonance AudioParam
	sampleRate        float64
	stage             [4]float32
}

// NewLadderFilter builds a filter driven by the given cutoff (Hz) and
// resonance ([0, 1], clamped to 0.95) params.
func NewLadderFilter(cutoff, resonance AudioParam) *LadderFilter {
	return &LadderFilter{cutoff: cutoff, resonance: resonance, sampleRate: 44100}
}

func (f *LadderFilter) SetSampleRate(rate float64) {
	f.sampleRate = rate
	f.cutoff.setSampleRate(rate)
	f.resonance.setSampleRate(rate)
}

func (f *LadderFilter) Latency() int { return 0 }

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (f *LadderFilter) Process(buf []float32, sampleIndex uint64) {
	f.cutoff.prepare(len(buf), sampleIndex)
	f.resonance.prepare(len(buf), sampleIndex)

	nyquist := float32(f.sampleRate / 2)
	for i := range buf {
		cutoffHz := clamp32(f.cutoff.at(i), 1, nyquist-1)
		res := clamp32(f.resonance.at(i), 0, 0.95)

		g := float32(1 - math.Exp(-2*math.Pi*float64(cutoffHz)/f.sampleRate))
		input := buf[i] - res*4*float32(math.Tanh(float64(f.stage[3])))

		f.stage[0] += g * (input - f.stage[0])
		f.stage[1] += g * (f.stage[0] - f.stage[1])
		f.stage[2] += g * (f.stage[1] - f.stage[2])
		f.stage[3] += g * (f.stage[2] - f.stage[3])

		buf[i] = f.stage[3]
	}
}
