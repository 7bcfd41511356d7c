// Command chifit fits a straight line to measurements with uncertainties by
// chi-square minimization and reports the goodness of fit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chifit",
		Short:         "Chi-square line fitting for data with error bars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config", "", "YAML config file")

	cmd.AddCommand(newFitCommand())
	cmd.AddCommand(newProbabilityCommand())
	return cmd
}
