package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"infinitetrak"
	"infinitetrak/internal/mixer"
	"infinitetrak/internal/project"
	"infinitetrak/internal/render"
)

func newRenderCmd() *cobra.Command {
	var (
		eqBands    []float32
		effectKind string
	)

	cmd := &cobra.Command{
		Use:   "render <project.json> <output.wav>",
		Short: "Render a project to a 16-bit stereo WAV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(args[0])
			if err != nil {
				return err
			}
			state := infinitetrak.NewSharedState(p.BPM, render.SampleRate)
			p.ApplyTo(state)

			busCfg := mixer.DefaultConfig()
			busCfg.BPM = p.BPM
			if len(eqBands) == 5 {
				copy(busCfg.EQBands[:], eqBands)
			}
			if effectKind != "" {
				busCfg.Effects = append(busCfg.Effects, mixer.EffectSpec{Kind: effectKind})
			}

			if err := render.ToWAVWithBus(state, args[1], busCfg); err != nil {
				return err
			}
			fmt.Printf("rendered %s -> %s\n", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().Float32SliceVar(&eqBands, "eq", nil, "5 master EQ band gains, low to high (e.g. 1,1,1,1,1)")
	cmd.Flags().StringVar(&effectKind, "effect", "", "one master-bus effect to enable: delay|chorus|distortion|compressor|reverb")
	return cmd
}
