package mixer

import "fmt"

// EffectSpec names one master-bus effect and its parameters, the way
// the teacher's player.go parsed "#EFFECTn" directives into a concrete
// Effector via createEffect; here the source is a project file's
// "effects" list instead of inline MML text, but the dispatch is the
// same switch-on-kind shape.
type EffectSpec struct {
	Kind   string             `json:"kind"`
	Params map[string]float32 `json:"params,omitempty"`
}

func paramOr(spec EffectSpec, key string, def float32) float32 {
	if v, ok := spec.Params[key]; ok {
		return v
	}
	return def
}

// BuildEffector constructs the Effector named by spec.Kind. bpm is the
// project tempo in effect when the bus was built; effects that make
// sense synced to the song (currently "delay", via its "tempoSync"
// param) use it instead of a fixed millisecond time.
func BuildEffector(sampleRate int, spec EffectSpec, bpm float64) (Effector, error) {
	switch spec.Kind {
	case "delay":
		delayMs := float64(paramOr(spec, "delayMs", 250))
		if paramOr(spec, "tempoSync", 0) != 0 && bpm > 0 {
			division := float64(paramOr(spec, "division", 0.5))
			delayMs = (60000.0 / bpm) * division
		}
		return NewDelay(sampleRate,
			delayMs,
			paramOr(spec, "feedback", 0.3),
			paramOr(spec, "cross", 0.2),
			paramOr(spec, "wet", 0.25),
		), nil
	case "chorus":
		return NewChorus(sampleRate,
			paramOr(spec, "delayMs", 15),
			paramOr(spec, "feedback", 0.2),
			paramOr(spec, "depthMs", 4),
			paramOr(spec, "rateHz", 0.8),
			paramOr(spec, "wet", 0.3),
		), nil
	case "distortion":
		return NewDistortion(sampleRate,
			paramOr(spec, "preGain", 2),
			paramOr(spec, "postGain", 0.6),
			paramOr(spec, "lpfCutoff", 6000),
		), nil
	case "compressor":
		return NewCompressor(sampleRate,
			paramOr(spec, "thresholdDB", -18),
			paramOr(spec, "ratio", 4),
			paramOr(spec, "attackMs", 10),
			paramOr(spec, "releaseMs", 80),
			paramOr(spec, "makeupDB", 3),
		), nil
	case "reverb":
		return NewReverb(sampleRate,
			paramOr(spec, "roomSize", 0.4),
			paramOr(spec, "feedback", 0.5),
			paramOr(spec, "wet", 0.2),
		), nil
	default:
		return nil, fmt.Errorf("mixer: unknown effect kind %q", spec.Kind)
	}
}

// Config is a project's master-bus settings: one gain per EQ band plus
// an ordered list of effects. BPM is not serialized — callers set it
// from the project's own tempo immediately before building the bus, so
// a tempo-synced delay tracks the song it's mixed against.
type Config struct {
	EQBands [5]float32   `json:"eqBands,omitempty"`
	Effects []EffectSpec `json:"effects,omitempty"`
	BPM     float64      `json:"-"`
}

// DefaultConfig returns a transparent master bus: unity EQ, no effects.
func DefaultConfig() Config {
	return Config{EQBands: [5]float32{1, 1, 1, 1, 1}}
}

// Bus is the fixed stereo post-chain applied to the finished mix: a
// 5-band EQ followed by an ordered effect chain. It holds no
// per-channel or per-note state and runs identically whether fed by
// internal/render or internal/audio.
type Bus struct {
	eq    *EQ5Band
	chain *Chain
}

// NewBus builds a Bus from cfg at sampleRate.
func NewBus(sampleRate int, cfg Config) (*Bus, error) {
	eq := NewEQ5Band(sampleRate)
	for band, gain := range cfg.EQBands {
		if gain != 0 {
			eq.SetGain(band, gain)
		}
	}
	chain := NewChain()
	for _, spec := range cfg.Effects {
		eff, err := BuildEffector(sampleRate, spec, cfg.BPM)
		if err != nil {
			return nil, err
		}
		chain.Add(eff)
	}
	return &Bus{eq: eq, chain: chain}, nil
}

// SetBandGain adjusts one EQ band live.
func (b *Bus) SetBandGain(band int, gain float32) {
	b.eq.SetGain(band, gain)
}

// ProcessStereo runs the bus over an interleaved-by-slice stereo
// buffer pair in place: EQ, then the configured effect chain, then the
// bus's own output safety limiter, which runs unconditionally since
// nothing downstream of the bus is guaranteed to clip the signal
// before it reaches the audio device.
func (b *Bus) ProcessStereo(left, right []float32) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		l, r := b.eq.Process(left[i], right[i])
		l, r = b.chain.Process(l, r)
		left[i], right[i] = softLimit(l), softLimit(r)
	}
}
