package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/services"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
	"github.com/ersonp/dex-core/internal/infrastructure/kvstore/sqlite"
	"github.com/ersonp/dex-core/internal/infrastructure/logging"
	"github.com/ersonp/dex-core/internal/infrastructure/pokeapi"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config           *config.Config
	SearchHandler    *handlers.SearchHandler
	CompareHandler   *handlers.CompareHandler
	DetailsHandler   *handlers.DetailsHandler
	FavoritesHandler *handlers.FavoritesHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	logger    *zap.Logger
	repo      *sqlite.Repository
	favorites *services.FavoritesStore
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level components.
// Used by commands that need direct repository access.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	base, err := config.BaseDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(globalVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	policy, err := services.ParseVariantPolicy(cfg.Search.VariantPolicy)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.SQLitePath(base)})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	client, err := pokeapi.NewClient(cfg.API)
	if err != nil {
		return fmt.Errorf("creating api client: %w", err)
	}

	searchService := services.NewSearchService(client, services.SearchOptions{
		VariantPolicy:  policy,
		MaxConcurrency: cfg.API.MaxConcurrency,
		MaxID:          cfg.Search.MaxID,
	}, logger)
	detailsService := services.NewDetailsService(client, logger)

	favorites := services.NewFavoritesStore(repo, cfg.FavoritesKey(globalProfile), logger)
	favorites.Initialize(ctx)

	deps := &internalDeps{
		Deps: Deps{
			Config:           cfg,
			SearchHandler:    handlers.NewSearchHandler(searchService),
			CompareHandler:   handlers.NewCompareHandler(searchService),
			DetailsHandler:   handlers.NewDetailsHandler(detailsService, favorites),
			FavoritesHandler: handlers.NewFavoritesHandler(favorites, searchService),
		},
		logger:    logger,
		repo:      repo,
		favorites: favorites,
	}

	return fn(deps)
}
