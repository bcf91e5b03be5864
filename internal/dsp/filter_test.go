package dsp

import "testing"

func TestLadderFilterStaysBounded(t *testing.T) {
	osc := NewOscillator(StaticParam(2000), WaveSaw)
	filt := NewLadderFilter(StaticParam(500), StaticParam(0.9))
	osc.SetSampleRate(44100)
	filt.SetSampleRate(44100)

	buf := make([]float32, 2048)
	osc.Process(buf, 0)
	filt.Process(buf, 0)

	for i, v := range buf {
		if v != v || v < -10 || v > 10 {
			t.Fatalf("filter output unstable at sample %d: %v", i, v)
		}
	}
}

func TestLadderFilterClampsExtremeCutoff(t *testing.T) {
	filt := NewLadderFilter(StaticParam(1e9), StaticParam(2))
	filt.SetSampleRate(44100)
	buf := make([]float32, 64)
	for i := range buf {
		buf[i] = 1
	}
	filt.Process(buf, 0)
	for i, v := range buf {
		if v != v || v < -10 || v > 10 {
			t.Fatalf("clamp failed to keep filter stable at sample %d: %v", i, v)
		}
	}
}
