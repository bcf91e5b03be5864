package dsp

import "testing"

func TestParameterSetGet(t *testing.T) {
	p := NewParameter(440)
	if got := p.Get(); got != 440 {
		t.Fatalf("Get() = %v, want 440", got)
	}
	p.Set(-1.5)
	if got := p.Get(); got != -1.5 {
		t.Fatalf("Get() after Set(-1.5) = %v, want -1.5", got)
	}
}

func TestStaticParamConstant(t *testing.T) {
	p := StaticParam(2.5)
	buf := make([]float32, 8)
	p.prepare(len(buf), 0)
	for i := range buf {
		if got := p.at(i); got != 2.5 {
			t.Fatalf("at(%d) = %v, want 2.5", i, got)
		}
	}
}

func TestLinkedParamTracksParameter(t *testing.T) {
	cell := NewParameter(100)
	p := LinkedParam(cell)
	p.prepare(4, 0)
	if got := p.at(0); got != 100 {
		t.Fatalf("at(0) = %v, want 100", got)
	}
	cell.Set(200)
	if got := p.at(1); got != 200 {
		t.Fatalf("at(1) after Set(200) = %v, want 200", got)
	}
}
