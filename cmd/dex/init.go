package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/infrastructure/config"
	"github.com/ersonp/dex-core/internal/infrastructure/kvstore/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the dex configuration",
		Long:  "Creates a .dex directory with default configuration and an empty favorites database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	base, err := config.BaseDir()
	if err != nil {
		return err
	}

	if config.Exists(base) {
		return fmt.Errorf("dex already initialized in %s", config.ConfigDir(base))
	}

	if err := config.WriteDefault(base); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Created %s\n", config.ConfigFilePath(base))

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.SQLitePath(base)})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	fmt.Printf("Created database: %s\n", repo.Path())
	fmt.Println("Dex initialized successfully!")

	return nil
}
