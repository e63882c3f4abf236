package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:          "skipset [command]",
		Short:        "Inspect the shape of skip list sets",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		statsCmd(),
		demoCmd(),
	)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
