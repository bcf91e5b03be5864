package mixer

import "math"

// Distortion is tanh waveshaping distortion with pre/post gain, an
// optional post lowpass to tame aliasing, and a DC blocker. tanh itself
// is symmetric, but clipping a summed, multi-channel bus signal whose
// positive and negative peaks differ leaves a DC offset in the output,
// and a DC-biased mix eats into the headroom the bus limiter has to
// work with, so the blocker runs unconditionally.
type Distortion struct {
	preGain  float32
	postGain float32
	lpfAlpha float32
	lpfL     float32
	lpfR     float32
	dcPrevL  float32
	dcPrevR  float32
	dcOutL   float32
	dcOutR   float32
}

// dcBlockR is the DC-blocker's pole. Close to 1 means a very low
// cutoff, so it removes offset without touching audible bass content.
const dcBlockR = 0.995

// NewDistortion creates a distortion effect. preGain drives the
// waveshaper harder, postGain trims the output, lpfCutoff (Hz, 0 to
// disable) smooths the result.
func NewDistortion(sampleRate int, preGain, postGain, lpfCutoff float32) *Distortion {
	d := &Distortion{preGain: preGain, postGain: postGain}
	if lpfCutoff > 0 && lpfCutoff < float32(sampleRate)/2 {
		rc := 1.0 / (2.0 * math.Pi * float64(lpfCutoff))
		dt := 1.0 / float64(sampleRate)
		d.lpfAlpha = float32(dt / (rc + dt))
	}
	return d
}

func (d *Distortion) Process(l, r float32) (float32, float32) {
	l *= d.preGain
	r *= d.preGain
	l = float32(math.Tanh(float64(l)))
	r = float32(math.Tanh(float64(r)))
	l *= d.postGain
	r *= d.postGain
	if d.lpfAlpha > 0 {
		d.lpfL += d.lpfAlpha * (l - d.lpfL)
		d.lpfR += d.lpfAlpha * (r - d.lpfR)
		l = d.lpfL
		r = d.lpfR
	}
	blockedL := l - d.dcPrevL + dcBlockR*d.dcOutL
	d.dcPrevL, d.dcOutL = l, blockedL
	blockedR := r - d.dcPrevR + dcBlockR*d.dcOutR
	d.dcPrevR, d.dcOutR = r, blockedR
	return blockedL, blockedR
}

func (d *Distortion) Reset() {
	d.lpfL = 0
	d.lpfR = 0
	d.dcPrevL, d.dcOutL = 0, 0
	d.dcPrevR, d.dcOutR = 0, 0
}
