package infinitetrak

// defaultInstrumentBank seeds the first 8 instrument slots with the
// original core's starter kit: three drum voices (meant for channels
// 0-2, the hard-retrigger drum channels) and five melodic voices. The
// remaining slots up to NumInstruments are padded with DefaultInstrument
// by NewSharedState.
func defaultInstrumentBank() []Instrument {
	return []Instrument{
		{
			Name: "Kick",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Sine, PitchEnvAmount: 150, PitchEnvDecay: 0.05},
				{Kind: ModuleFilter, Cutoff: 2000, Resonance: 0},
				{Kind: ModuleAdsr, Attack: 0.001, Decay: 0.2, Sustain: 0, Release: 0.1},
				{Kind: ModuleGain, Level: 0.9},
			},
		},
		{
			Name: "Hihat Cl",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Noise, PitchEnvDecay: 0.1},
				{Kind: ModuleFilter, Cutoff: 10000, Resonance: 0},
				{Kind: ModuleAdsr, Attack: 0.001, Decay: 0.05, Sustain: 0, Release: 0.05},
				{Kind: ModuleGain, Level: 0.6},
			},
		},
		{
			Name: "Snare",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Noise, PitchEnvDecay: 0.1},
				{Kind: ModuleFilter, Cutoff: 3000, Resonance: 0.2},
				{Kind: ModuleAdsr, Attack: 0.001, Decay: 0.15, Sustain: 0, Release: 0.1},
				{Kind: ModuleGain, Level: 0.7},
			},
		},
		{
			Name: "Bass Saw",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Saw, PitchEnvDecay: 0.1},
				{Kind: ModuleFilter, Cutoff: 400, Resonance: 0.4},
				{Kind: ModuleAdsr, Attack: 0.01, Decay: 0.2, Sustain: 0.6, Release: 0.2},
				{Kind: ModuleGain, Level: 0.6},
			},
		},
		{
			Name: "Lead Sq",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Square, PitchEnvDecay: 0.1},
				{Kind: ModuleFilter, Cutoff: 3000, Resonance: 0.2},
				{Kind: ModuleAdsr, Attack: 0.02, Decay: 0.1, Sustain: 0.8, Release: 0.3},
				{Kind: ModuleGain, Level: 0.5},
			},
		},
		{
			Name: "Pluck",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Triangle, PitchEnvDecay: 0.1},
				{Kind: ModuleFilter, Cutoff: 2000, Resonance: 0},
				{Kind: ModuleAdsr, Attack: 0.001, Decay: 0.3, Sustain: 0, Release: 0.3},
				{Kind: ModuleGain, Level: 0.6},
			},
		},
		{
			Name: "Pad",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Saw, PitchEnvDecay: 0.1},
				{Kind: ModuleFilter, Cutoff: 800, Resonance: 0.1},
				{Kind: ModuleAdsr, Attack: 0.5, Decay: 0.5, Sustain: 0.7, Release: 1.0},
				{Kind: ModuleGain, Level: 0.4},
			},
		},
		{
			Name: "Acid",
			Modules: []ModuleConfig{
				{Kind: ModuleOscillator, Waveform: Saw, PitchEnvDecay: 0.1},
				{Kind: ModuleFilter, Cutoff: 600, Resonance: 0.8},
				{Kind: ModuleAdsr, Attack: 0.01, Decay: 0.2, Sustain: 0.2, Release: 0.1},
				{Kind: ModuleGain, Level: 0.5},
			},
		},
	}
}
