// Package main provides the entry point for the dex CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0-dev"
	globalProfile string
	globalVerbose bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dex",
		Short:        "Search, compare and collect creatures from PokeAPI",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalProfile, "profile", "p", "", "Favorites profile to operate on")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(
		newInitCmd(),
		newSearchCmd(),
		newFindCmd(),
		newRandomCmd(),
		newCompareCmd(),
		newShowCmd(),
		newFavoritesCmd(),
		newTypesCmd(),
		newBrowseCmd(),
	)

	return rootCmd
}
