package main

import (
	"cmp"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmcpheron/ancient-number-converter/internal/config"
	"github.com/jmcpheron/ancient-number-converter/internal/logging"
	"github.com/jmcpheron/ancient-number-converter/internal/ux"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.json() {
				return a.out.JSON(a.cfg)
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Write the built-in defaults as YAML. The path defaults to --config, then
$NUMERALS_CONFIG, then numerals/numerals.yaml under the user config directory.
An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		// The file may not exist yet, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Default()
			a.logger = logging.Discard()
			a.out = ux.NewPrinter(a.stdout, ux.ColorMode(cmp.Or(a.color, a.cfg.Output.Color)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.DefaultPath()
			}
			if path == "" {
				return fmt.Errorf("no config path; pass one explicitly")
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			a.out.Success("wrote " + path)
			return nil
		},
	}

	cmd.AddCommand(show, initCmd)
	return cmd
}
