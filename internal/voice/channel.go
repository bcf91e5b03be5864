package voice

import "infinitetrak"

// Channel owns one pattern column's Voice plus the small amount of
// state needed to decide trigger vs. legato vs. no-op when a new row
// is dispatched: which instrument is currently loaded, and which key
// was last heard.
type Channel struct {
	voice             *Voice
	currentInstrument int
	lastKey           uint8
}

// NewChannel builds an empty channel at the given sample rate, with no
// instrument loaded.
func NewChannel(sampleRate float64) *Channel {
	return &Channel{
		voice:             NewVoice(sampleRate),
		currentInstrument: -1,
	}
}

// ensureInstrument builds the channel's voice if instrumentIndex differs
// from what is currently loaded; otherwise it hands the definition to
// UpdateParams, which updates the voice in place, or rebuilds it if the
// instrument's module shape changed since last load.
func (c *Channel) ensureInstrument(instrumentIndex int, inst infinitetrak.Instrument) {
	if instrumentIndex != c.currentInstrument || !c.voice.IsBuilt() {
		c.voice.Build(inst.Modules)
		c.currentInstrument = instrumentIndex
		return
	}
	c.voice.UpdateParams(inst.Modules)
}

// TriggerNote hard-triggers key on the given instrument: always opens
// the gate and restarts every envelope, even if a note is already
// ringing. Used for drum channels, where every hit is a fresh strike.
func (c *Channel) TriggerNote(instrumentIndex int, inst infinitetrak.Instrument, key uint8) {
	c.ensureInstrument(instrumentIndex, inst)
	c.voice.Trigger(key)
	c.lastKey = key
}

// LegatoNote plays key on the given instrument. glide should be true
// only when key repeats this channel's last key with the gate still
// open; any other case (a new key, or nothing was sounding) gets a
// full Trigger instead. Used for melodic channels, so a held note
// glides into itself but a note change always gets a fresh attack.
func (c *Channel) LegatoNote(instrumentIndex int, inst infinitetrak.Instrument, key uint8, glide bool) {
	c.ensureInstrument(instrumentIndex, inst)
	if glide {
		c.voice.Legato(key)
	} else {
		c.voice.Trigger(key)
	}
	c.lastKey = key
}

// Release sends the channel's envelope into its release stage without
// resetting any other state.
func (c *Channel) Release() {
	if c.voice.IsBuilt() {
		c.voice.Release()
	}
}

// Silence hard-stops the channel: the gate closes and the last-known
// key is cleared, used on the transport's playing-to-stopped edge so
// held notes don't ring out indefinitely.
func (c *Channel) Silence() {
	if c.voice.IsBuilt() {
		c.voice.Release()
	}
	c.lastKey = 0
}

// LastKey returns the most recent key this channel was told to play,
// or 0 if none (or after Silence).
func (c *Channel) LastKey() uint8 {
	return c.lastKey
}

// SetSampleRate propagates a sample rate change to the channel's voice.
func (c *Channel) SetSampleRate(rate float64) {
	c.voice.SetSampleRate(rate)
}

// Process renders len(buf) samples of this channel's current voice
// output into buf, overwriting it.
func (c *Channel) Process(buf []float32, sampleIndex uint64) {
	c.voice.Process(buf, sampleIndex)
}
