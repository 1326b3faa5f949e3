package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gokatarajesh/qcm-math/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "qcm:", err)
		os.Exit(1)
	}
}
