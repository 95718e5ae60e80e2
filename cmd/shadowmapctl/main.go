// Command shadowmapctl converts, prints and audits documents saved with
// shadow maps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/shadowmap/internal/ctl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ctl.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:errcheck
		stop()
		os.Exit(1)
	}
}
