// Package render drives the engine offline, deterministically, to
// produce a WAV file instead of live audio.
package render

import (
	"fmt"

	"infinitetrak"
	"infinitetrak/internal/engine"
	"infinitetrak/internal/mixer"
	"infinitetrak/internal/wavout"
)

// SampleRate is the fixed render rate, independent of whatever device
// rate live playback happens to use, so renders are reproducible
// across machines.
const SampleRate = 44100

// BlockSize is the callback size the offline driver feeds the engine,
// matching the block size a real audio backend would typically use.
const BlockSize = 512

// ToWAV renders state's song to a 16-bit stereo WAV file at path. It
// plays through every pattern in state.Patterns exactly once, in
// order, regardless of state.IsPlaying or state.CurrentPattern at call
// time: rendering is always "play the whole song from the top."
//
// The render operates on a private copy of state so it never races
// with, or mutates, a SharedState the editor or a live engine is using
// concurrently.
func ToWAV(state *infinitetrak.SharedState, path string) error {
	return ToWAVWithBus(state, path, mixer.DefaultConfig())
}

// ToWAVWithBus is ToWAV with an explicit master-bus configuration
// (EQ and effect chain) applied to the stereo mix before it is written.
func ToWAVWithBus(state *infinitetrak.SharedState, path string, busCfg mixer.Config) error {
	state.Lock()
	renderState := &infinitetrak.SharedState{
		Patterns:    append([]infinitetrak.Pattern(nil), state.Patterns...),
		Instruments: state.Instruments,
		BPM:         state.BPM,
	}
	state.Unlock()

	if len(renderState.Patterns) == 0 {
		renderState.Patterns = []infinitetrak.Pattern{infinitetrak.NewPattern()}
	}
	renderState.SamplesPerTick = infinitetrak.SamplesPerTick(SampleRate, renderState.BPM)
	// Force a tick on the very first processed sample, so row 0 of the
	// first pattern plays immediately instead of waiting a full tick.
	renderState.CurrentTickSamples = renderState.SamplesPerTick
	renderState.IsPlaying = true
	renderState.CurrentPattern = 0
	renderState.CurrentRow = 0

	totalTicks := len(renderState.Patterns) * infinitetrak.RowsPerPattern
	totalSamples := totalTicks * renderState.SamplesPerTick

	eng := engine.NewTrackerEngine(renderState, SampleRate)

	busCfg.BPM = renderState.BPM
	bus, err := mixer.NewBus(SampleRate, busCfg)
	if err != nil {
		return fmt.Errorf("render: master bus: %w", err)
	}

	w, err := wavout.Create(path, SampleRate)
	if err != nil {
		return err
	}

	mono := make([]float32, BlockSize)
	left := make([]float32, BlockSize)
	right := make([]float32, BlockSize)
	var sampleIndex uint64
	samplesWritten := 0
	patternsPlayed := 0
	lastRow := renderState.CurrentRow

	for samplesWritten < totalSamples {
		n := BlockSize
		if remaining := totalSamples - samplesWritten; remaining < n {
			n = remaining
		}
		block := mono[:n]

		// Advance state.CurrentPattern to the next pattern in sequence
		// whenever the row counter wraps back to 0, so a multi-pattern
		// song plays start to finish in one render instead of looping
		// the first pattern forever.
		renderState.Lock()
		if renderState.CurrentRow < lastRow {
			patternsPlayed++
			renderState.CurrentPattern = patternsPlayed % len(renderState.Patterns)
		}
		lastRow = renderState.CurrentRow
		renderState.Unlock()

		eng.Process(block, sampleIndex)

		l, r := left[:n], right[:n]
		copy(l, block)
		copy(r, block)
		bus.ProcessStereo(l, r)

		if err := w.WriteStereo(l, r); err != nil {
			_ = w.Close()
			return fmt.Errorf("render: write block: %w", err)
		}

		sampleIndex += uint64(n)
		samplesWritten += n
	}

	if err := w.Close(); err != nil {
		return err
	}
	return nil
}
