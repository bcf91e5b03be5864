package dsp

import "testing"

func TestChainSeriesAppliesInOrder(t *testing.T) {
	chain := NewDspChain(44100)
	chain.And(NewDcSource(StaticParam(0.5)))
	chain.And(NewGain(StaticParam(2)))

	buf := make([]float32, 4)
	chain.Process(buf, 0)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("buf[%d] = %v, want 1 (0.5 * 2)", i, v)
		}
	}
}

func TestChainAndMixSums(t *testing.T) {
	main := NewDspChain(44100)
	main.And(NewDcSource(StaticParam(1)))

	mod := NewDspChain(44100)
	mod.And(NewDcSource(StaticParam(1)))
	main.AndMix(0.5, mod)

	buf := make([]float32, 4)
	main.Process(buf, 0)
	for i, v := range buf {
		if v != 1.5 {
			t.Fatalf("buf[%d] = %v, want 1.5 (1 + 0.5*1)", i, v)
		}
	}
}

func TestChainSampleRatePropagates(t *testing.T) {
	osc := NewOscillator(StaticParam(1), WaveSine)
	chain := NewDspChain(44100)
	chain.And(osc)
	chain.SetSampleRate(8000)

	if osc.sampleRate != 8000 {
		t.Fatalf("osc.sampleRate = %v, want 8000 after chain.SetSampleRate", osc.sampleRate)
	}
}

func TestChainEmptyIsNoOp(t *testing.T) {
	chain := NewDspChain(44100)
	buf := []float32{1, 2, 3}
	chain.Process(buf, 0)
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
		t.Fatalf("empty chain mutated buffer: %v", buf)
	}
}
