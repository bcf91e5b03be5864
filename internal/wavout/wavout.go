// Package wavout writes 16-bit PCM stereo WAV files, wrapping
// go-audio/wav's Encoder instead of hand-rolling a RIFF writer.
package wavout

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Writer encodes stereo float32 samples in [-1, 1] as 16-bit PCM
// frames, handing each frame to the WAV encoder as it is written;
// Close finalizes the WAV header and closes the file.
type Writer struct {
	f       *os.File
	enc     *wav.Encoder
	scratch *audio.IntBuffer
}

// Create opens path and prepares a stereo WAV encoder at sampleRate.
func Create(path string, sampleRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wavout: create %s: %w", path, err)
	}
	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)
	return &Writer{
		f:   f,
		enc: enc,
		scratch: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

// WriteFrame writes one interleaved stereo frame (left, right), each
// in [-1, 1]; values outside that range are clamped before scaling to
// 16-bit PCM.
func (w *Writer) WriteFrame(left, right float32) error {
	w.scratch.Data = append(w.scratch.Data[:0], toPCM16(left), toPCM16(right))
	return w.enc.Write(w.scratch)
}

// WriteMono duplicates a mono buffer into both stereo channels, one
// WAV frame per input sample. This is how the tracker's mono engine
// output reaches a stereo WAV file.
func (w *Writer) WriteMono(buf []float32) error {
	for _, s := range buf {
		if err := w.WriteFrame(s, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteStereo writes a pair of equal-length left/right buffers, one
// WAV frame per sample index.
func (w *Writer) WriteStereo(left, right []float32) error {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		if err := w.WriteFrame(left[i], right[i]); err != nil {
			return err
		}
	}
	return nil
}

func toPCM16(v float32) int {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int(math.Round(float64(v) * 32767))
}

// Close flushes the WAV header and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("wavout: close encoder: %w", err)
	}
	return w.f.Close()
}
