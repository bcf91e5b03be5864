package mixer

import "math"

// Compressor is a feedforward dynamics compressor with a single,
// stereo-linked envelope follower. A per-instrument compressor can
// afford independent left/right detection, but gain-reducing the two
// sides of a finished mix by different amounts shifts its stereo
// image on every transient, so the bus compressor derives one gain
// from the louder of the two channels and applies it to both.
type Compressor struct {
	threshold float32
	ratio     float32
	attack    float32
	release   float32
	makeup    float32
	env       float32
}

// NewCompressor creates a compressor. thresholdDB and makeupDB are in
// dB, ratio is e.g. 4 for 4:1, attackMs/releaseMs are in milliseconds.
func NewCompressor(sampleRate int, thresholdDB, ratio, attackMs, releaseMs, makeupDB float32) *Compressor {
	sr := float64(sampleRate)
	return &Compressor{
		threshold: float32(math.Pow(10, float64(thresholdDB)/20)),
		ratio:     ratio,
		attack:    float32(1.0 - math.Exp(-1.0/(float64(attackMs)*sr/1000.0))),
		release:   float32(1.0 - math.Exp(-1.0/(float64(releaseMs)*sr/1000.0))),
		makeup:    float32(math.Pow(10, float64(makeupDB)/20)),
	}
}

func (c *Compressor) Process(l, r float32) (float32, float32) {
	absL := float32(math.Abs(float64(l)))
	absR := float32(math.Abs(float64(r)))
	peak := absL
	if absR > peak {
		peak = absR
	}
	if peak > c.env {
		c.env += c.attack * (peak - c.env)
	} else {
		c.env += c.release * (peak - c.env)
	}
	gain := c.computeGain(c.env) * c.makeup
	return l * gain, r * gain
}

func (c *Compressor) computeGain(env float32) float32 {
	if env <= c.threshold || c.threshold <= 0 {
		return 1.0
	}
	over := env / c.threshold
	return float32(math.Pow(float64(over), float64(1.0/c.ratio-1)))
}

func (c *Compressor) Reset() {
	c.env = 0
}
