package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/sales-analytics/cmd/analyze"
	"fjacquet/sales-analytics/cmd/catalog"
	"fjacquet/sales-analytics/cmd/clean"
	"fjacquet/sales-analytics/cmd/root"
	"fjacquet/sales-analytics/cmd/validate"
	"fjacquet/sales-analytics/internal/config"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	config.LoadEnv()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(clean.Cmd)
	root.Cmd.AddCommand(catalog.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
