// Package engine is the audio callback entry point: it owns one Channel
// per pattern column, ticks them against a tempo-driven sample counter
// shared with the editor, and mixes their output into the callback's
// output buffer.
package engine

import (
	"infinitetrak"
	"infinitetrak/internal/voice"
)

// numDrumChannels is the count of hard-retrigger channels at the low
// end of the channel list (0-2): every tick with a key plays a fresh
// strike, never legato. Channels at or above this index are melodic
// and glide into a held note instead of retriggering it.
const numDrumChannels = 3

// previewDuration is how long an auditioned note rings before the
// engine releases it on the editor's behalf, for previews that never
// receive an explicit note-off.
const previewDuration = 0.4 // seconds

// TrackerEngine is the FrameProcessor-shaped root of the audio graph:
// one instance per audio stream, holding NumChannels Channels and a
// pointer to the musical state it shares with the editor thread.
type TrackerEngine struct {
	channels   [infinitetrak.NumChannels]*voice.Channel
	state      *infinitetrak.SharedState
	sampleRate float64

	wasPlaying    bool
	previewTimers [infinitetrak.NumChannels]int
}

// NewTrackerEngine builds an engine bound to state, with every channel
// silent and no instrument loaded.
func NewTrackerEngine(state *infinitetrak.SharedState, sampleRate float64) *TrackerEngine {
	e := &TrackerEngine{state: state, sampleRate: sampleRate}
	for i := range e.channels {
		e.channels[i] = voice.NewChannel(sampleRate)
		e.previewTimers[i] = -1
	}
	return e
}

// SetSampleRate propagates a sample rate change to every channel.
func (e *TrackerEngine) SetSampleRate(rate float64) {
	e.sampleRate = rate
	for _, c := range e.channels {
		c.SetSampleRate(rate)
	}
}

func (e *TrackerEngine) Latency() int { return 0 }

// Process renders len(buf) mono samples starting at the absolute
// sample index sampleIndex. It follows one fixed sequence every call:
// zero the buffer, take the state mutex just long enough to drain the
// preview mailbox and snapshot the transport, release it, silence
// every channel on a playing-to-stopped transition, dispatch any ticks
// that fall inside this buffer, render and sum every channel, then
// hard-clip the mix to [-1, 1].
func (e *TrackerEngine) Process(buf []float32, sampleIndex uint64) {
	for i := range buf {
		buf[i] = 0
	}

	var (
		preview             *infinitetrak.PreviewRequest
		isPlaying           bool
		ticksToRun          int
		samplesPerTick      int
		firstRow            int
		patternIdx          int
		stoppedThisCallback bool
	)

	e.state.Lock()
	preview = e.state.PreviewRequest
	e.state.PreviewRequest = nil
	isPlaying = e.state.IsPlaying
	samplesPerTick = e.state.SamplesPerTick
	if samplesPerTick <= 0 {
		samplesPerTick = infinitetrak.SamplesPerTick(e.sampleRate, e.state.BPM)
		e.state.SamplesPerTick = samplesPerTick
	}

	// firstRow is the row in effect when this callback started: the row a
	// tick crossed during this buffer plays BEFORE CurrentRow advances to
	// the next one, so the sequence of rows to dispatch below always
	// starts here regardless of how many ticks land in this buffer.
	firstRow = e.state.CurrentRow
	if isPlaying {
		e.state.CurrentTickSamples += len(buf)
		for e.state.CurrentTickSamples >= samplesPerTick {
			e.state.CurrentTickSamples -= samplesPerTick
			e.state.CurrentRow = (e.state.CurrentRow + 1) % infinitetrak.RowsPerPattern
			ticksToRun++
		}
	}
	patternIdx = e.state.CurrentPattern
	if isPlaying != e.wasPlaying && !isPlaying {
		stoppedThisCallback = true
	}
	e.wasPlaying = isPlaying
	instruments := e.state.Instruments
	var pattern infinitetrak.Pattern
	if patternIdx >= 0 && patternIdx < len(e.state.Patterns) {
		pattern = e.state.Patterns[patternIdx]
	}
	e.state.Unlock()

	if stoppedThisCallback {
		for _, c := range e.channels {
			c.Silence()
		}
	}

	if preview != nil {
		e.servicePreview(*preview, instruments)
	}

	for t := 0; t < ticksToRun; t++ {
		tickRow := (firstRow + t) % infinitetrak.RowsPerPattern
		e.dispatchTick(pattern, tickRow, instruments)
	}

	e.advancePreviewTimers(len(buf))

	mix := make([]float32, len(buf))
	for _, c := range e.channels {
		c.Process(mix, sampleIndex)
		for i, v := range mix {
			buf[i] += v
		}
	}

	for i, v := range buf {
		if v > 1 {
			buf[i] = 1
		} else if v < -1 {
			buf[i] = -1
		}
	}
}

// dispatchTick plays whatever note is in row for every channel. Drum
// channels (< numDrumChannels) always hard-retrigger a nonzero key;
// melodic channels glide into a nonzero key only when it repeats the
// channel's last key with the gate still open, otherwise trigger
// fresh. An empty cell on a channel that was still sounding releases
// it, so a note never rings past the row after it.
func (e *TrackerEngine) dispatchTick(p infinitetrak.Pattern, row int, instruments [infinitetrak.NumInstruments]infinitetrak.Instrument) {
	cells := p.Rows[row]
	for ch := 0; ch < infinitetrak.NumChannels; ch++ {
		key := cells[ch].Key
		if key == 0 {
			e.channels[ch].Silence()
			continue
		}
		instIdx := ch % infinitetrak.NumInstruments
		inst := instruments[instIdx]

		if ch < numDrumChannels {
			e.channels[ch].TriggerNote(instIdx, inst, key)
		} else {
			glide := key == e.channels[ch].LastKey()
			e.channels[ch].LegatoNote(instIdx, inst, key, glide)
		}
	}
}

func (e *TrackerEngine) servicePreview(req infinitetrak.PreviewRequest, instruments [infinitetrak.NumInstruments]infinitetrak.Instrument) {
	if req.Channel < 0 || req.Channel >= infinitetrak.NumChannels {
		return
	}
	ch := e.channels[req.Channel]
	if req.Key == 0 {
		ch.Release()
		e.previewTimers[req.Channel] = -1
		return
	}
	instIdx := req.Channel % infinitetrak.NumInstruments
	ch.TriggerNote(instIdx, instruments[instIdx], req.Key)
	e.previewTimers[req.Channel] = int(previewDuration * e.sampleRate)
}

func (e *TrackerEngine) advancePreviewTimers(n int) {
	for i := range e.previewTimers {
		if e.previewTimers[i] < 0 {
			continue
		}
		e.previewTimers[i] -= n
		if e.previewTimers[i] <= 0 {
			e.previewTimers[i] = -1
			e.channels[i].Release()
		}
	}
}
