package audio

import (
	"infinitetrak/internal/engine"
	"infinitetrak/internal/mixer"
)

// EngineSource adapts a mono TrackerEngine, plus the fixed master bus,
// into the interleaved-stereo SampleSource Player expects: each call
// renders one mono block from the engine, duplicates it to left/right,
// runs it through the bus, and interleaves the result into dst.
type EngineSource struct {
	engine      *engine.TrackerEngine
	bus         *mixer.Bus
	sampleIndex uint64

	mono  []float32
	left  []float32
	right []float32
}

// NewEngineSource builds a SampleSource around eng, post-processed by bus.
func NewEngineSource(eng *engine.TrackerEngine, bus *mixer.Bus) *EngineSource {
	return &EngineSource{engine: eng, bus: bus}
}

// Process fills dst with interleaved stereo float32 samples: dst must
// have an even length, len(dst)/2 frames.
func (s *EngineSource) Process(dst []float32) {
	frames := len(dst) / 2
	if frames == 0 {
		return
	}
	if cap(s.mono) < frames {
		s.mono = make([]float32, frames)
		s.left = make([]float32, frames)
		s.right = make([]float32, frames)
	}
	mono := s.mono[:frames]
	left := s.left[:frames]
	right := s.right[:frames]

	s.engine.Process(mono, s.sampleIndex)
	s.sampleIndex += uint64(frames)

	copy(left, mono)
	copy(right, mono)
	s.bus.ProcessStereo(left, right)

	for i := 0; i < frames; i++ {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}
}
