// Command numerals converts between decimal integers and historical numeral
// notations, verifies round trips and serves the engine over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmcpheron/ancient-number-converter/internal/ux"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		ux.NewPrinter(os.Stderr, ux.ColorAuto).Error(err.Error())
		stop()
		os.Exit(1)
	}
}
