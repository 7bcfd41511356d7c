// Package config assembles the run configuration of the chifit command.
//
// Settings come from four layers, later ones winning:
//
//  1. Default()
//  2. a YAML file passed with --config
//  3. environment variables named CHIFIT_<KEY>, dashes as underscores
//     (CHIFIT_MAX_ITER=800)
//  4. command line flags registered by RegisterFlags
//
// Keys match the flag names:
//
//	title: Spring constant
//	x-label: mass (kg)
//	y-label: extension (m)
//	save-plots: true
//	output-dir: charts
//	format: yaml
//	restarts: 3
//	log-level: debug
package config
