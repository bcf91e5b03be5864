package dsp

// DcSource overwrites its buffer with a constant (or AudioParam-driven)
// value every sample. It is the generator half of a pitch-envelope
// sub-chain: a DcSource holding the envelope's peak amount, scaled
// through a Gain driven by an Adsr, mixed into an oscillator's
// frequency via DspChain.AndMix.
type DcSource struct {
	value      AudioParam
	sampleRate float64
}

// NewDcSource builds a constant source at value.
func NewDcSource(value AudioParam) *DcSource {
	return &DcSource{value: value, sampleRate: 44100}
}

func (d *DcSource) SetSampleRate(rate float64) {
	d.sampleRate = rate
	d.value.setSampleRate(rate)
}

func (d *DcSource) Latency() int { return 0 }

func (d *DcSource) Process(buf []float32, sampleIndex uint64) {
	d.value.prepare(len(buf), sampleIndex)
	for i := range buf {
		buf[i] = d.value.at(i)
	}
}
