package mixer

import "math"

// Chorus is a modulated delay, usable as a chorus or flanger effect.
// On the master bus it runs its left and right LFOs out of phase,
// widening the stereo image of a mix that reached the bus already
// summed down from (often identical-sounding) mono voices; a
// per-instrument chorus has no such need since the instrument is
// already one point in the stereo field.
type Chorus struct {
	bufL, bufR []float32
	pos        int
	size       int
	depth      float32
	rate       float64
	phaseL     float64
	phaseR     float64
	feedback   float32
	wet        float32
}

// chorusStereoSpread is the phase offset, in radians, between the
// left and right modulation LFOs.
const chorusStereoSpread = math.Pi / 2

// NewChorus creates a chorus/flanger effect. delayMs plus depthMs sets
// the delay line's length (delayMs typically 5-30ms); the tap sits at
// the middle of that line, about (delayMs+depthMs)/2, and swings by
// ±depthMs around it. rateHz is the modulation rate (typically
// 0.1-5Hz), wet the wet/dry mix.
func NewChorus(sampleRate int, delayMs, feedback, depthMs, rateHz, wet float32) *Chorus {
	baseSamples := int(float64(delayMs) * float64(sampleRate) / 1000.0)
	depthSamples := float64(depthMs) * float64(sampleRate) / 1000.0
	size := baseSamples + int(depthSamples) + 2
	if size < 4 {
		size = 4
	}
	return &Chorus{
		bufL:     make([]float32, size),
		bufR:     make([]float32, size),
		size:     size,
		depth:    float32(depthSamples),
		rate:     2.0 * math.Pi * float64(rateHz) / float64(sampleRate),
		phaseR:   chorusStereoSpread,
		feedback: clamp(feedback, 0, 0.9),
		wet:      clamp(wet, 0, 1),
	}
}

func (c *Chorus) Process(l, r float32) (float32, float32) {
	modL := float32(math.Sin(c.phaseL)) * c.depth
	modR := float32(math.Sin(c.phaseR)) * c.depth
	c.phaseL += c.rate
	c.phaseR += c.rate
	if c.phaseL > 2*math.Pi {
		c.phaseL -= 2 * math.Pi
	}
	if c.phaseR > 2*math.Pi {
		c.phaseR -= 2 * math.Pi
	}
	c.bufL[c.pos] = l
	c.bufR[c.pos] = r

	delL := c.tapAt(c.bufL, modL)
	delR := c.tapAt(c.bufR, modR)

	c.bufL[c.pos] += delL * c.feedback
	c.bufR[c.pos] += delR * c.feedback

	c.pos++
	if c.pos >= c.size {
		c.pos = 0
	}
	return l*(1-c.wet) + delL*c.wet, r*(1-c.wet) + delR*c.wet
}

// tapAt reads buf with linear interpolation at a delay of size/2+mod
// samples behind the current write position.
func (c *Chorus) tapAt(buf []float32, mod float32) float32 {
	delay := float32(c.size/2) + mod
	readPos := float32(c.pos) - delay
	for readPos < 0 {
		readPos += float32(c.size)
	}
	idx := int(readPos)
	frac := readPos - float32(idx)
	idx2 := idx + 1
	if idx2 >= c.size {
		idx2 = 0
	}
	return buf[idx]*(1-frac) + buf[idx2]*frac
}

func (c *Chorus) Reset() {
	for i := range c.bufL {
		c.bufL[i] = 0
		c.bufR[i] = 0
	}
	c.pos = 0
	c.phaseL = 0
	c.phaseR = chorusStereoSpread
}
