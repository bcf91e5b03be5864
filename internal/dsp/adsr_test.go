package dsp

import "testing"

func TestAdsrAttackReachesPeakWithinOneSample(t *testing.T) {
	gate := NewParameter(1)
	e := NewAdsr(LinkedParam(gate), StaticParam(0.01), StaticParam(0.1), StaticParam(0.5), StaticParam(0.1))
	e.SetSampleRate(100) // 1 sample = 10ms, attack = 1 sample

	buf := make([]float32, 4)
	e.Process(buf, 0)
	if buf[0] < 0.99 {
		t.Fatalf("expected attack to reach ~1 at sample 0, got %v", buf[0])
	}
}

func TestAdsrDecaySettlesAtSustain(t *testing.T) {
	gate := NewParameter(1)
	e := NewAdsr(LinkedParam(gate), StaticParam(0), StaticParam(0.001), StaticParam(0.3), StaticParam(0.1))
	e.SetSampleRate(1000)

	buf := make([]float32, 16)
	e.Process(buf, 0)
	last := buf[len(buf)-1]
	if last < 0.29 || last > 0.31 {
		t.Fatalf("expected envelope to settle near sustain 0.3, got %v", last)
	}
}

func TestAdsrReleaseReachesZero(t *testing.T) {
	gate := NewParameter(1)
	e := NewAdsr(LinkedParam(gate), StaticParam(0), StaticParam(0), StaticParam(0.8), StaticParam(0.001))
	e.SetSampleRate(1000)

	buf := make([]float32, 4)
	e.Process(buf, 0)

	gate.Set(0)
	buf2 := make([]float32, 8)
	e.Process(buf2, 4)
	if buf2[len(buf2)-1] != 0 {
		t.Fatalf("expected envelope to reach 0 after release, got %v", buf2[len(buf2)-1])
	}
}

func TestAdsrTriggerRearmsWithoutGateChange(t *testing.T) {
	gate := NewParameter(1)
	e := NewAdsr(LinkedParam(gate), StaticParam(0), StaticParam(0), StaticParam(0.5), StaticParam(0.1))
	e.SetSampleRate(1000)
	trig := e.CreateTrigger()

	buf := make([]float32, 4)
	e.Process(buf, 0) // settles at sustain 0.5
	if e.state != envSustain {
		t.Fatalf("expected sustain state, got %v", e.state)
	}

	trig.Fire()
	buf2 := make([]float32, 1)
	e.Process(buf2, 4)
	if e.state != envAttack && e.state != envDecay {
		t.Fatalf("expected trigger to re-arm attack/decay, state is %v", e.state)
	}
}
