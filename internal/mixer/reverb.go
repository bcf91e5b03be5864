package mixer

// Reverb is a Schroeder-style reverb: four parallel comb filters
// feeding two series allpass filters, run as two decorrelated banks
// (left and right) instead of one mono tail copied to both channels.
// A single instrument's reverb send can get away with a mono tail
// since it is one mono source to begin with, but collapsing the whole
// mix to mono before reverberating it would narrow the stereo image
// the bus is supposed to be finishing, not shrinking.
type Reverb struct {
	combsL, combsR     [4]combFilter
	allpassL, allpassR [2]allpassFilter
	wet                float32
}

type combFilter struct {
	buf []float32
	pos int
	fb  float32
}

type allpassFilter struct {
	buf []float32
	pos int
	fb  float32
}

// reverbStereoSpreadPPM detunes the right channel's delay lengths from
// the left's by this fraction, so the two banks' comb resonances don't
// line up and the tail decorrelates into a wider image instead of
// summing back to mono.
const reverbStereoSpreadPPM = 23.0 / 1000.0

// NewReverb creates a reverb effect. roomSize (0..1) scales delay
// lengths, feedback (0..1) controls decay time, wet is the mix.
func NewReverb(sampleRate int, roomSize, feedback, wet float32) *Reverb {
	base := int(float32(sampleRate) * roomSize * 0.05)
	if base < 10 {
		base = 10
	}
	fb := clamp(feedback, 0, 0.95)
	r := &Reverb{wet: clamp(wet, 0, 1)}
	combLens := [4]int{base, base * 1117 / 1000, base * 1271 / 1000, base * 1437 / 1000}
	apLens := [2]int{base * 347 / 1000, base * 213 / 1000}
	buildBank := func(spread float64) ([4]combFilter, [2]allpassFilter) {
		var combs [4]combFilter
		for i, n := range combLens {
			n = n + int(float64(n)*spread)
			combs[i] = combFilter{buf: make([]float32, maxInt(n, 1)), fb: fb}
		}
		var allpass [2]allpassFilter
		for i, n := range apLens {
			n = n + int(float64(n)*spread)
			allpass[i] = allpassFilter{buf: make([]float32, maxInt(n, 1)), fb: 0.5}
		}
		return combs, allpass
	}
	r.combsL, r.allpassL = buildBank(0)
	r.combsR, r.allpassR = buildBank(reverbStereoSpreadPPM)
	return r
}

func (r *Reverb) Process(l, rr float32) (float32, float32) {
	outL := processBank(r.combsL[:], r.allpassL[:], l)
	outR := processBank(r.combsR[:], r.allpassR[:], rr)
	return l*(1-r.wet) + outL*r.wet, rr*(1-r.wet) + outR*r.wet
}

func processBank(combs []combFilter, allpass []allpassFilter, in float32) float32 {
	var out float32
	for i := range combs {
		out += combs[i].process(in)
	}
	out *= 0.25
	for i := range allpass {
		out = allpass[i].process(out)
	}
	return out
}

func (r *Reverb) Reset() {
	for _, bank := range [][]combFilter{r.combsL[:], r.combsR[:]} {
		for i := range bank {
			for j := range bank[i].buf {
				bank[i].buf[j] = 0
			}
			bank[i].pos = 0
		}
	}
	for _, bank := range [][]allpassFilter{r.allpassL[:], r.allpassR[:]} {
		for i := range bank {
			for j := range bank[i].buf {
				bank[i].buf[j] = 0
			}
			bank[i].pos = 0
		}
	}
}

func (c *combFilter) process(in float32) float32 {
	out := c.buf[c.pos]
	c.buf[c.pos] = in + out*c.fb
	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	return out
}

func (a *allpassFilter) process(in float32) float32 {
	bufOut := a.buf[a.pos]
	out := -in + bufOut
	a.buf[a.pos] = in + bufOut*a.fb
	a.pos++
	if a.pos >= len(a.buf) {
		a.pos = 0
	}
	return out
}
