package dsp

import "testing"

func TestOscillatorSineRange(t *testing.T) {
	osc := NewOscillator(StaticParam(440), WaveSine)
	osc.SetSampleRate(44100)
	buf := make([]float32, 512)
	osc.Process(buf, 0)
	for i, v := range buf {
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("buf[%d] = %v, out of [-1, 1]", i, v)
		}
	}
}

func TestOscillatorSquareIsBipolar(t *testing.T) {
	osc := NewOscillator(StaticParam(100), WaveSquare)
	osc.SetSampleRate(44100)
	buf := make([]float32, 256)
	osc.Process(buf, 0)
	for i, v := range buf {
		if v != 1 && v != -1 {
			t.Fatalf("buf[%d] = %v, want +-1", i, v)
		}
	}
}

func TestOscillatorPhaseContinuousAcrossBuffers(t *testing.T) {
	a := NewOscillator(StaticParam(220), WaveSaw)
	a.SetSampleRate(44100)
	b := NewOscillator(StaticParam(220), WaveSaw)
	b.SetSampleRate(44100)

	whole := make([]float32, 32)
	a.Process(whole, 0)

	split := make([]float32, 32)
	b.Process(split[:16], 0)
	b.Process(split[16:], 16)

	for i := range whole {
		if whole[i] != split[i] {
			t.Fatalf("sample %d diverged: %v vs %v", i, whole[i], split[i])
		}
	}
}

func TestNoiseRNGDeterministic(t *testing.T) {
	a := newNoiseRNG()
	b := newNoiseRNG()
	for i := 0; i < 64; i++ {
		if a.next() != b.next() {
			t.Fatalf("noise sample %d diverged between identically seeded generators", i)
		}
	}
}
