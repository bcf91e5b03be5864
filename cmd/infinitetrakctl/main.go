// Command infinitetrakctl is a small command-line front end for the
// tracker engine: create a blank project, render one to a WAV file,
// or play one live through the system's audio output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "infinitetrakctl",
		Short: "Create, render and play infinitetrak projects",
	}
	root.AddCommand(newNewCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newPlayCmd())
	return root
}
