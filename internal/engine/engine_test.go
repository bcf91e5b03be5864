package engine

import (
	"testing"

	"infinitetrak"
)

func newTestState() *infinitetrak.SharedState {
	return infinitetrak.NewSharedState(120, 44100)
}

func TestProcessSilentWhenStopped(t *testing.T) {
	st := newTestState()
	e := NewTrackerEngine(st, 44100)

	buf := make([]float32, 256)
	e.Process(buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0 while stopped", i, v)
		}
	}
}

func TestProcessClipsToUnitRange(t *testing.T) {
	st := newTestState()
	st.Patterns[0].Rows[0][0].Key = 60
	st.IsPlaying = true

	e := NewTrackerEngine(st, 44100)
	buf := make([]float32, 4096)
	e.Process(buf, 0)

	for i, v := range buf {
		if v < -1 || v > 1 {
			t.Fatalf("buf[%d] = %v, out of [-1, 1]", i, v)
		}
	}
}

func TestPreviewRequestTriggersAndDrainsMailbox(t *testing.T) {
	st := newTestState()
	e := NewTrackerEngine(st, 44100)

	st.Lock()
	st.PreviewRequest = &infinitetrak.PreviewRequest{Channel: 3, Key: 60}
	st.Unlock()

	buf := make([]float32, 1024)
	e.Process(buf, 0)

	nonzero := false
	for _, v := range buf {
		if v != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Fatalf("expected preview trigger to produce audible output")
	}

	st.Lock()
	if st.PreviewRequest != nil {
		t.Fatalf("expected engine to drain the preview mailbox")
	}
	st.Unlock()
}

func TestTransportStopSilencesChannels(t *testing.T) {
	st := newTestState()
	st.Patterns[0].Rows[0][3].Key = 60
	st.IsPlaying = true

	e := NewTrackerEngine(st, 44100)
	buf := make([]float32, 64)
	e.Process(buf, 0)

	st.Lock()
	st.IsPlaying = false
	st.Unlock()

	e.Process(buf, 64)
	if e.channels[3].LastKey() != 0 {
		t.Fatalf("expected playing-to-stopped transition to silence channel 3, lastKey = %v", e.channels[3].LastKey())
	}
}

func TestEmptyRowReleasesPreviouslySoundingChannel(t *testing.T) {
	st := newTestState()
	st.SamplesPerTick = 8
	st.CurrentTickSamples = 8
	st.Patterns[0].Rows[0][3].Key = 60
	// Row 1 leaves channel 3 empty.
	st.IsPlaying = true

	e := NewTrackerEngine(st, 44100)
	buf := make([]float32, 16)
	e.Process(buf, 0)

	if e.channels[3].LastKey() != 0 {
		t.Fatalf("expected empty row to release channel 3 and clear lastKey, got %v", e.channels[3].LastKey())
	}
}

func TestMelodicChannelHardRetriggersOnKeyChange(t *testing.T) {
	st := newTestState()
	st.SamplesPerTick = 8
	st.CurrentTickSamples = 8
	st.Patterns[0].Rows[0][3].Key = 60
	st.Patterns[0].Rows[1][3].Key = 61
	st.IsPlaying = true

	e := NewTrackerEngine(st, 44100)
	buf := make([]float32, 8)
	e.Process(buf, 0)

	if e.channels[3].LastKey() != 61 {
		t.Fatalf("expected channel 3 to have played key 61 last, got %v", e.channels[3].LastKey())
	}
}

func TestDrumChannelsRetriggerEveryTick(t *testing.T) {
	st := newTestState()
	st.SamplesPerTick = 8
	st.CurrentTickSamples = 8
	st.Patterns[0].Rows[0][0].Key = 36
	st.Patterns[0].Rows[1][0].Key = 36
	st.IsPlaying = true

	e := NewTrackerEngine(st, 44100)
	buf := make([]float32, 8)
	e.Process(buf, 0)
	if e.channels[0].LastKey() != 36 {
		t.Fatalf("expected drum channel to have played key 36")
	}
}
