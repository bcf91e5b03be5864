package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"infinitetrak"
	"infinitetrak/internal/audio"
	"infinitetrak/internal/engine"
	"infinitetrak/internal/mixer"
	"infinitetrak/internal/project"
)

const liveSampleRate = 44100

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <project.json>",
		Short: "Play a project live and block until Enter is pressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(args[0])
			if err != nil {
				return err
			}
			state := infinitetrak.NewSharedState(p.BPM, liveSampleRate)
			p.ApplyTo(state)

			eng := engine.NewTrackerEngine(state, liveSampleRate)
			busCfg := mixer.DefaultConfig()
			busCfg.BPM = p.BPM
			bus, err := mixer.NewBus(liveSampleRate, busCfg)
			if err != nil {
				return err
			}
			source := audio.NewEngineSource(eng, bus)

			player, err := audio.NewPlayer(liveSampleRate, source)
			if err != nil {
				return fmt.Errorf("open audio output: %w", err)
			}

			state.Lock()
			state.IsPlaying = true
			state.Unlock()

			player.Play()
			fmt.Println("playing; press Enter to stop")
			bufio.NewReader(os.Stdin).ReadString('\n')

			state.Lock()
			state.IsPlaying = false
			state.Unlock()
			return player.Stop()
		},
	}
	return cmd
}
