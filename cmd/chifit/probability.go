package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/chifit/stats"
)

func newProbabilityCommand() *cobra.Command {
	var (
		chi float64
		dof int
	)

	cmd := &cobra.Command{
		Use:   "probability",
		Short: "Print the chi-square survival probability for a statistic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := stats.SurvivalProbability(chi, dof)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "P(chi^2 >= %g | dof=%d) = %.6g\n", chi, dof, p)
			return err
		},
	}
	cmd.Flags().Float64Var(&chi, "chi", 0, "chi-square statistic")
	cmd.Flags().IntVar(&dof, "dof", 1, "degrees of freedom")
	_ = cmd.MarkFlagRequired("chi")
	return cmd
}
