package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jmcpheron/ancient-number-converter/internal/server"
	"github.com/jmcpheron/ancient-number-converter/pkg/api"
)

func (a *app) runCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a JSON request",
		Long: `Read one JSON request from --file or stdin and print the JSON response.
This is the same request format served at POST /v1/run.

Examples:
  echo '{"op":"encode","system":"roman","number":1999}' | numerals run
  numerals run -f request.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if file != "" {
				data, err = os.ReadFile(file)
			} else {
				data, err = io.ReadAll(a.stdin)
			}
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}

			out, err := api.Run(strings.TrimSpace(string(data)))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (default stdin)")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter over HTTP",
		Long: `Start the HTTP API. Routes:

  GET  /healthz
  GET  /metrics
  GET  /v1/systems
  GET  /v1/systems/:id
  GET  /v1/systems/:id/encode/:n
  GET  /v1/systems/:id/verify/:n
  GET  /v1/systems/:id/showcase
  POST /v1/run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}
			if a.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			srv := server.New(server.Config{Addr: cfg.Addr, ShutdownTimeout: cfg.ShutdownTimeout}, a.logger)
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
