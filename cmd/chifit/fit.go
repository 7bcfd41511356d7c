package main

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sartorproj/chifit/config"
	"github.com/sartorproj/chifit/dataset"
	"github.com/sartorproj/chifit/linfit"
	"github.com/sartorproj/chifit/plot"
	"github.com/sartorproj/chifit/report"
)

func newFitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit DATA",
		Short: "Fit y = m*x + c to a data file",
		Long: `Fit y = m*x + c to a data file by minimizing the weighted chi-square.

DATA is either a whitespace table with rows "x y xerr yerr" or a CSV file
with x, y, xerr and yerr columns. Points with a zero y error are weighted by
their observed y.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			v := viper.New()
			v.Set("data", args[0])
			cfg, err := config.Load(v, configFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runFit(cmd.OutOrStdout(), cfg, logger)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runFit(out io.Writer, cfg *config.Config, logger *logrus.Logger) error {
	log := logger.WithField("data", cfg.Data)

	ds, err := dataset.Load(cfg.Data)
	if err != nil {
		return err
	}
	ds = ds.WithName(cfg.ChartTitle())
	log.WithField("points", ds.Len()).Debug("loaded dataset")

	model := linfit.New(cfg.FitConfig(logger))
	if err := model.Fit(ds); err != nil {
		return errors.Wrapf(err, "fit %s", cfg.Data)
	}
	summary := model.Summary()

	if cfg.SavePlots {
		if err := savePlots(cfg, model, log); err != nil {
			return err
		}
	}

	return report.Encode(out, summary, cfg.ReportFormat())
}

func savePlots(cfg *config.Config, model *linfit.Model, log logrus.FieldLogger) error {
	ds := model.Data()
	params := model.Params

	pointOpts := cfg.PointOptions()
	pointFile := filepath.Join(cfg.OutputDir, plot.FileName(pointOpts.Title))
	err := plot.WriteFile(pointFile, func(w io.Writer) error {
		return plot.Points(w, ds, &params, pointOpts)
	})
	if err != nil {
		return err
	}
	log.WithField("file", pointFile).Info("saved point plot")

	residualOpts := cfg.ResidualOptions()
	residualFile := filepath.Join(cfg.OutputDir, plot.FileName(residualOpts.Title))
	err = plot.WriteFile(residualFile, func(w io.Writer) error {
		return plot.Residuals(w, ds, model.Residuals(), residualOpts)
	})
	if err != nil {
		return err
	}
	log.WithField("file", residualFile).Info("saved residual plot")

	return nil
}
