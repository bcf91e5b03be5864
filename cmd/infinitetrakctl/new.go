package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"infinitetrak"
	"infinitetrak/internal/project"
)

func newNewCmd() *cobra.Command {
	var bpm float64

	cmd := &cobra.Command{
		Use:   "new <project.json>",
		Short: "Create a new project file with one empty pattern and the starter instrument bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := infinitetrak.NewSharedState(bpm, 44100)
			p := project.FromState(state)
			if err := project.Save(args[0], p); err != nil {
				return err
			}
			fmt.Printf("wrote %s (bpm=%g, %d instruments)\n", args[0], bpm, len(p.Instruments))
			return nil
		},
	}
	cmd.Flags().Float64Var(&bpm, "bpm", 120, "initial tempo")
	return cmd
}
