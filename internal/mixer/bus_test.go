package mixer

import "testing"

func TestDefaultConfigIsTransparent(t *testing.T) {
	bus, err := NewBus(44100, DefaultConfig())
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	left := []float32{0.5, -0.3, 0.1}
	right := []float32{0.5, -0.3, 0.1}
	wantL := append([]float32(nil), left...)
	wantR := append([]float32(nil), right...)

	bus.ProcessStereo(left, right)

	for i := range left {
		if abs32(left[i]-wantL[i]) > 1e-4 || abs32(right[i]-wantR[i]) > 1e-4 {
			t.Fatalf("sample %d: got (%v,%v), want (%v,%v)", i, left[i], right[i], wantL[i], wantR[i])
		}
	}
}

func TestBuildEffectorUnknownKind(t *testing.T) {
	_, err := BuildEffector(44100, EffectSpec{Kind: "bogus"}, 120)
	if err == nil {
		t.Fatalf("expected error for unknown effect kind")
	}
}

func TestBusWithDelayAltersSignal(t *testing.T) {
	cfg := Config{
		EQBands: [5]float32{1, 1, 1, 1, 1},
		Effects: []EffectSpec{{Kind: "delay", Params: map[string]float32{"delayMs": 1, "feedback": 0.5, "wet": 1}}},
	}
	bus, err := NewBus(44100, cfg)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	left := make([]float32, 256)
	right := make([]float32, 256)
	left[0] = 1
	right[0] = 1
	bus.ProcessStereo(left, right)

	foundDelayed := false
	for i := 1; i < len(left); i++ {
		if left[i] != 0 {
			foundDelayed = true
			break
		}
	}
	if !foundDelayed {
		t.Fatalf("expected delay to echo the impulse later in the buffer")
	}
}

func TestBuildEffectorTempoSyncedDelay(t *testing.T) {
	synced, err := BuildEffector(44100, EffectSpec{Kind: "delay", Params: map[string]float32{"tempoSync": 1, "division": 0.5}}, 120)
	if err != nil {
		t.Fatalf("BuildEffector: %v", err)
	}
	fixed, err := BuildEffector(44100, EffectSpec{Kind: "delay", Params: map[string]float32{"delayMs": 250}}, 120)
	if err != nil {
		t.Fatalf("BuildEffector: %v", err)
	}
	if len(synced.(*Delay).bufL) != len(fixed.(*Delay).bufL) {
		t.Fatalf("120bpm eighth-note delay should match a 250ms fixed delay, got %d vs %d samples",
			len(synced.(*Delay).bufL), len(fixed.(*Delay).bufL))
	}
}

func TestSoftLimitLeavesHeadroomUntouched(t *testing.T) {
	if got := softLimit(0.5); got != 0.5 {
		t.Fatalf("softLimit(0.5) = %v, want unchanged", got)
	}
	if got := softLimit(1.5); got <= limiterCeiling || got >= 1.0 {
		t.Fatalf("softLimit(1.5) = %v, want a value between %v and 1.0", got, limiterCeiling)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
