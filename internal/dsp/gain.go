package dsp

// Gain is a voltage-controlled amplifier: it multiplies its input
// buffer by level, sample by sample. Used both as an instrument's
// output stage and, with a Dynamic level driven by an envelope
// sub-chain, as the VCA half of an ADSR.
type Gain struct {
	level      AudioParam
	sampleRate float64
}

// NewGain builds a gain stage scaled by level.
func NewGain(level AudioParam) *Gain {
	return &Gain{level: level, sampleRate: 44100}
}

func (g *Gain) SetSampleRate(rate float64) {
	g.sampleRate = rate
	g.level.setSampleRate(rate)
}

func (g *Gain) Latency() int { return 0 }

func (g *Gain) Process(buf []float32, sampleIndex uint64) {
	g.level.prepare(len(buf), sampleIndex)
	for i := range buf {
		buf[i] *= g.level.at(i)
	}
}
