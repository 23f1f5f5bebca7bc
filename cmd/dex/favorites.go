package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage the favorites list",
		Long:    "List, add, remove or toggle saved creatures. Each --profile keeps its own list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesList(cmd)
		},
	}

	cmd.AddCommand(newFavoritesListCmd())
	cmd.AddCommand(newFavoritesMutateCmd("add", "Save a creature", (*handlers.FavoritesHandler).Add))
	cmd.AddCommand(newFavoritesMutateCmd("remove", "Remove a saved creature", (*handlers.FavoritesHandler).Remove))
	cmd.AddCommand(newFavoritesMutateCmd("toggle", "Save or remove a creature", (*handlers.FavoritesHandler).Toggle))
	cmd.AddCommand(newFavoritesExportCmd())
	cmd.AddCommand(newFavoritesImportCmd())
	cmd.AddCommand(newFavoritesProfilesCmd())

	return cmd
}

func newFavoritesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved creatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesList(cmd)
		},
	}
}

func runFavoritesList(cmd *cobra.Command) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		favorites := d.FavoritesHandler.List()
		if len(favorites) == 0 {
			renderEmptyState(os.Stdout, "No favorites yet. Add one with 'dex favorites add <name>'.")
			return nil
		}

		fmt.Printf("%d favorite(s):\n\n", len(favorites))
		renderCreatureList(os.Stdout, favorites, func(int) bool { return true })
		return nil
	})
}

type favoritesMutation func(*handlers.FavoritesHandler, context.Context, string) *handlers.FavoriteResult

func newFavoritesMutateCmd(use, short string, mutate favoritesMutation) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id-or-name>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				for _, key := range args {
					displayFavoriteResult(mutate(d.FavoritesHandler, ctx, key))
				}
				return nil
			})
		},
	}
}

func displayFavoriteResult(result *handlers.FavoriteResult) {
	if result.Creature == nil {
		renderEmptyState(os.Stdout, fmt.Sprintf("No creature found for %q.", result.Key))
		return
	}

	name := displayName(result.Creature.Name)
	switch {
	case result.Changed && result.Favorite:
		fmt.Printf("Saved %s.\n", name)
	case result.Changed:
		fmt.Printf("Removed %s.\n", name)
	case result.Favorite:
		fmt.Printf("%s is already a favorite.\n", name)
	default:
		fmt.Printf("%s is not a favorite.\n", name)
	}
}

func newFavoritesProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles that have saved favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfilesList(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <profile>",
		Short: "Delete a profile's saved favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withInternalDeps(ctx, func(d *internalDeps) error {
				key := d.Config.FavoritesKey(args[0])
				if err := d.repo.Delete(ctx, key); err != nil {
					return err
				}
				fmt.Printf("Deleted favorites for profile %s.\n", config.SanitizeProfileName(args[0]))
				return nil
			})
		},
	})

	return cmd
}

func runProfilesList(cmd *cobra.Command) error {
	ctx := cmd.Context()
	return withInternalDeps(ctx, func(d *internalDeps) error {
		base := d.Config.FavoritesKey(config.DefaultProfile)
		entries, err := d.repo.List(ctx, base)
		if err != nil {
			return err
		}

		var found bool
		for _, e := range entries {
			name, ok := profileFromKey(base, e.Key)
			if !ok {
				continue
			}
			found = true
			fmt.Printf("%-20s updated %s\n", name, e.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		if !found {
			renderEmptyState(os.Stdout, "No profiles have saved favorites yet.")
		}
		return nil
	})
}

// profileFromKey maps a storage key back to the profile that owns it.
func profileFromKey(base, key string) (string, bool) {
	if key == base {
		return config.DefaultProfile, true
	}
	name, ok := strings.CutPrefix(key, base+":")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
