package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sartorproj/chifit/errs"
	"github.com/sartorproj/chifit/linfit"
	"github.com/sartorproj/chifit/optimize"
	"github.com/sartorproj/chifit/plot"
	"github.com/sartorproj/chifit/report"
)

// EnvPrefix prefixes environment overrides, e.g. CHIFIT_MAX_ITER.
const EnvPrefix = "CHIFIT"

// Config is everything one fit run needs. It replaces interactive prompts for
// the data source, chart titles and save flags.
type Config struct {
	Data      string `mapstructure:"data"`
	Title     string `mapstructure:"title"`
	XLabel    string `mapstructure:"x-label"`
	YLabel    string `mapstructure:"y-label"`
	SavePlots bool   `mapstructure:"save-plots"`
	OutputDir string `mapstructure:"output-dir"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Format    string `mapstructure:"format"`

	StartSlope     float64 `mapstructure:"start-slope"`
	StartIntercept float64 `mapstructure:"start-intercept"`
	MaxIter        int     `mapstructure:"max-iter"`
	FTol           float64 `mapstructure:"ftol"`
	XTol           float64 `mapstructure:"xtol"`
	Restarts       int     `mapstructure:"restarts"`
	Parallel       bool    `mapstructure:"parallel"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// Default returns the default run configuration.
func Default() *Config {
	opt := optimize.DefaultConfig()
	fit := linfit.DefaultConfig()
	return &Config{
		OutputDir:      ".",
		Width:          1024,
		Height:         768,
		Format:         string(report.FormatText),
		StartSlope:     fit.Start.Slope,
		StartIntercept: fit.Start.Intercept,
		FTol:           opt.FTol,
		XTol:           opt.XTol,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// RegisterFlags adds one flag per setting to fs, defaulting to Default().
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("title", d.Title, "chart title (default: data file name)")
	fs.String("x-label", d.XLabel, "x axis label")
	fs.String("y-label", d.YLabel, "y axis label")
	fs.Bool("save-plots", d.SavePlots, "write point and residual charts as PNG")
	fs.String("output-dir", d.OutputDir, "directory for saved charts")
	fs.Int("width", d.Width, "chart width in pixels")
	fs.Int("height", d.Height, "chart height in pixels")
	fs.StringP("format", "o", d.Format, "report format: text, json or yaml")
	fs.Float64("start-slope", d.StartSlope, "initial slope guess")
	fs.Float64("start-intercept", d.StartIntercept, "initial intercept guess")
	fs.Int("max-iter", d.MaxIter, "minimizer iteration cap (0: 200 per parameter)")
	fs.Float64("ftol", d.FTol, "minimizer tolerance on objective spread")
	fs.Float64("xtol", d.XTol, "minimizer tolerance on simplex size")
	fs.Int("restarts", d.Restarts, "re-seed the minimizer up to this many times if it does not converge")
	fs.Bool("parallel", d.Parallel, "evaluate simplex vertices concurrently")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.String("log-format", d.LogFormat, "log format: text or json")
}

// Load merges defaults, the config file (if any), environment and flags, in
// increasing precedence. fs may be nil.
func Load(v *viper.Viper, configFile string, fs *pflag.FlagSet) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	d := Default()
	v.SetDefault("data", d.Data)
	v.SetDefault("title", d.Title)
	v.SetDefault("x-label", d.XLabel)
	v.SetDefault("y-label", d.YLabel)
	v.SetDefault("save-plots", d.SavePlots)
	v.SetDefault("output-dir", d.OutputDir)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("format", d.Format)
	v.SetDefault("start-slope", d.StartSlope)
	v.SetDefault("start-intercept", d.StartIntercept)
	v.SetDefault("max-iter", d.MaxIter)
	v.SetDefault("ftol", d.FTol)
	v.SetDefault("xtol", d.XTol)
	v.SetDefault("restarts", d.Restarts)
	v.SetDefault("parallel", d.Parallel)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that are not checked by the packages they feed.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errs.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Wrapf(errs.ErrInvalidConfig, "log format %q", c.LogFormat)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(errs.ErrInvalidConfig, "chart size %dx%d", c.Width, c.Height)
	}
	return c.FitConfig(nil).Validate()
}

// FitConfig returns the fit settings, logging to log.
func (c *Config) FitConfig(log logrus.FieldLogger) *linfit.Config {
	opt := optimize.DefaultConfig()
	opt.MaxIter = c.MaxIter
	opt.FTol = c.FTol
	opt.XTol = c.XTol
	opt.Parallel = c.Parallel

	return &linfit.Config{
		Start:     linfit.Params{Slope: c.StartSlope, Intercept: c.StartIntercept},
		Optimizer: opt,
		Restarts:  c.Restarts,
		Logger:    log,
	}
}

// ReportFormat returns the parsed report format.
func (c *Config) ReportFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}

// ChartTitle returns the configured title, or the data file's base name.
func (c *Config) ChartTitle() string {
	if c.Title != "" {
		return c.Title
	}
	base := filepath.Base(c.Data)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PointOptions returns chart options for the data and trendline plot.
func (c *Config) PointOptions() plot.Options {
	return plot.Options{
		Title:  c.ChartTitle(),
		XLabel: c.XLabel,
		YLabel: c.YLabel,
		Width:  c.Width,
		Height: c.Height,
	}
}

// ResidualOptions returns chart options for the residual plot.
func (c *Config) ResidualOptions() plot.Options {
	return plot.Options{
		Title:  "Residual Plot of " + c.YLabel,
		XLabel: c.XLabel,
		YLabel: "Residual in " + c.YLabel,
		Width:  c.Width,
		Height: c.Height,
	}
}

// NewLogger builds the logger described by the config, writing to w
// (os.Stderr when nil).
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrInvalidConfig, "log level %q", c.LogLevel)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}
