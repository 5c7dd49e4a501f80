// Package cli constructs the gitfacade command-line interface, wiring the
// Cobra command hierarchy, the Viper-backed configuration loader, and zap
// logging around the git and hub façade commands.
package cli
