package dsp

import "math"

// Waveform selects an Oscillator's wave shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// noiseRNG is a tiny deterministic PRNG (xorshift32) instead of
// math/rand: every Oscillator gets its own fixed-seed instance, so
// offline renders of the same project are byte-identical across runs
// without sharing state or touching a global source.
type noiseRNG struct{ state uint32 }

func newNoiseRNG() *noiseRNG {
	return &noiseRNG{state: 0x9e3779b9}
}

func (r *noiseRNG) next() float32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return float32(x)/float32(math.MaxUint32)*2 - 1
}

// Oscillator is a phase-accumulating source. Frequency is an
// AudioParam so it can be a static pitch, a live-linked voice pitch,
// or a pitch modulated by a mixed-in envelope sub-chain.
type Oscillator struct {
	freq       AudioParam
	wave       Waveform
	sampleRate float64
	phase      float64
	rng        *noiseRNG
}

// NewOscillator builds an oscillator of the given waveform driven by freq.
func NewOscillator(freq AudioParam, wave Waveform) *Oscillator {
	return &Oscillator{freq: freq, wave: wave, sampleRate: 44100, rng: newNoiseRNG()}
}

func (o *Oscillator) SetSampleRate(rate float64) {
	o.sampleRate = rate
	o.freq.setSampleRate(rate)
}

func (o *Oscillator) Latency() int { return 0 }

func (o *Oscillator) Process(buf []float32, sampleIndex uint64) {
	o.freq.prepare(len(buf), sampleIndex)
	for i := range buf {
		switch o.wave {
		case WaveSine:
			buf[i] = float32(math.Sin(2 * math.Pi * o.phase))
		case WaveSquare:
			if math.Sin(2*math.Pi*o.phase) >= 0 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case WaveSaw:
			buf[i] = float32(2*o.phase - 1)
		case WaveTriangle:
			buf[i] = float32(1 - 4*math.Abs(o.phase-0.5))
		case WaveNoise:
			buf[i] = o.rng.next()
		}

		f := o.freq.at(i)
		if o.wave != WaveNoise && o.sampleRate > 0 {
			o.phase += float64(f) / o.sampleRate
			o.phase -= math.Floor(o.phase)
		}
	}
}
