package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "simulator",
		Short:        "Compare investment projections under fixed yield regimes",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newProjectCmd(), newInitConfigCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
