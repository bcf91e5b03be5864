package voice

import (
	"testing"

	"infinitetrak"
)

func TestMidiToFreqA4(t *testing.T) {
	f := MidiToFreq(69)
	if f < 439.9 || f > 440.1 {
		t.Fatalf("MidiToFreq(69) = %v, want ~440", f)
	}
}

func simpleInstrument() infinitetrak.Instrument {
	return infinitetrak.Instrument{
		Name: "Test",
		Modules: []infinitetrak.ModuleConfig{
			{Kind: infinitetrak.ModuleOscillator, Waveform: infinitetrak.Sine},
			{Kind: infinitetrak.ModuleAdsr, Attack: 0.001, Decay: 0.01, Sustain: 0.5, Release: 0.01},
			{Kind: infinitetrak.ModuleGain, Level: 0.8},
		},
	}
}

func TestVoiceBuildAndProcessProducesAudio(t *testing.T) {
	v := NewVoice(44100)
	v.Build(simpleInstrument().Modules)
	v.Trigger(69)

	buf := make([]float32, 512)
	v.Process(buf, 0)

	nonzero := false
	for _, s := range buf {
		if s != 0 {
			nonzero = true
		}
		if s < -1.5 || s > 1.5 {
			t.Fatalf("sample out of expected range: %v", s)
		}
	}
	if !nonzero {
		t.Fatalf("expected triggered voice to produce nonzero output")
	}
}

func TestVoiceUpdateParamsPreservesTopology(t *testing.T) {
	v := NewVoice(44100)
	inst := simpleInstrument()
	v.Build(inst.Modules)
	chainBefore := v.chain

	inst.Modules[2].Level = 0.2
	v.UpdateParams(inst.Modules)

	if v.chain != chainBefore {
		t.Fatalf("expected UpdateParams to keep the same chain when topology is unchanged")
	}
	if got := v.cells[2].level.Get(); got != 0.2 {
		t.Fatalf("level cell = %v, want 0.2", got)
	}
}

func TestVoiceUpdateParamsRebuildsOnTopologyChange(t *testing.T) {
	v := NewVoice(44100)
	inst := simpleInstrument()
	v.Build(inst.Modules)
	chainBefore := v.chain

	inst.Modules[0].Waveform = infinitetrak.Square
	v.UpdateParams(inst.Modules)

	if v.chain == chainBefore {
		t.Fatalf("expected UpdateParams to rebuild the chain on a waveform change")
	}
}

func TestChannelTriggerThenRelease(t *testing.T) {
	ch := NewChannel(44100)
	inst := simpleInstrument()
	ch.TriggerNote(0, inst, 60)
	if ch.LastKey() != 60 {
		t.Fatalf("LastKey() = %v, want 60", ch.LastKey())
	}
	ch.Release()

	buf := make([]float32, 256)
	ch.Process(buf, 0)
}

func TestChannelLegatoNoteGlideFlag(t *testing.T) {
	ch := NewChannel(44100)
	inst := simpleInstrument()

	ch.LegatoNote(0, inst, 60, false)
	triggerChain := ch.voice.chain
	if ch.LastKey() != 60 {
		t.Fatalf("LastKey() = %v, want 60", ch.LastKey())
	}

	// glide=true on a key repeat must not rebuild or retrigger the chain.
	ch.LegatoNote(0, inst, 60, true)
	if ch.voice.chain != triggerChain {
		t.Fatalf("expected glide to reuse the existing voice chain")
	}

	// glide=false (a new key) is still a hard trigger even though a note
	// is already sounding.
	ch.LegatoNote(0, inst, 64, false)
	if ch.LastKey() != 64 {
		t.Fatalf("LastKey() = %v, want 64", ch.LastKey())
	}
}

func TestChannelSilenceClearsLastKey(t *testing.T) {
	ch := NewChannel(44100)
	inst := simpleInstrument()
	ch.TriggerNote(0, inst, 72)
	ch.Silence()
	if ch.LastKey() != 0 {
		t.Fatalf("LastKey() after Silence() = %v, want 0", ch.LastKey())
	}
}
