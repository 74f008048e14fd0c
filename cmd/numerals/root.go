package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmcpheron/ancient-number-converter/internal/config"
	"github.com/jmcpheron/ancient-number-converter/internal/logging"
	"github.com/jmcpheron/ancient-number-converter/internal/ux"
)

// errFailed marks a command whose output already explains the failure.
var errFailed = errors.New("one or more conversions failed")

// app is the state shared by every subcommand, built before any of them runs.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    config.Config
	logger *slog.Logger
	out    *ux.Printer

	configPath string
	jsonOut    bool
	color      string
	logLevel   string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "numerals",
		Short: "Convert numbers to and from ancient numeral systems",
		Long: `numerals converts decimal integers to seven historical notations
(Mayan, Egyptian, Babylonian, Roman, Chinese Rod, Greek Attic, Quipu) and back,
with a step-by-step breakdown of every conversion.

Examples:
  numerals encode roman 1999
  numerals decode babylonian "𒁹 | 𒁹 | 𒁹"
  numerals verify quipu 305
  numerals sweep roman greekAttic`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $NUMERALS_CONFIG or the user config dir)")
	flags.BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")
	flags.StringVar(&a.color, "color", "", "color output: auto, always or never")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.systemsCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
		a.verifyCmd(),
		a.lintCmd(),
		a.compareCmd(),
		a.showcaseCmd(),
		a.sweepCmd(),
		a.quizCmd(),
		a.runCmd(),
		a.serveCmd(),
		a.configCmd(),
	)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// setup loads configuration and applies flag overrides on top of it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.color != "" {
		cfg.Output.Color = a.color
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.jsonOut {
		cfg.Output.Format = "json"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{
		Level:   level,
		JSON:    cfg.Log.Format == "json",
		Service: "numerals",
		Output:  a.stderr,
	})
	a.out = ux.NewPrinter(a.stdout, ux.ColorMode(cfg.Output.Color))
	a.logger.Debug("configured", "command", cmd.Name(), "output", cfg.Output.Format)
	return nil
}

func (a *app) json() bool {
	return a.cfg.Output.Format == "json"
}

// minArgs is cobra.MinimumNArgs with the command's usage line as the error.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("usage: %s", cmd.UseLine())
		}
		return nil
	}
}
