package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
)

func newSearchCmd() *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "search <id-or-name>",
		Short: "Look up a creature by id or exact name",
		Long:  "Looks up a creature by numeric id or exact name. With variant_policy: all, every form of the species is listed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := parseTypeFlags(types)
			if err != nil {
				return err
			}

			return withDeps(cmd.Context(), func(d *Deps) error {
				result := d.SearchHandler.HandleExact(cmd.Context(), args[0], tags)
				displaySearchResult(os.Stdout, result, d.FavoritesHandler,
					fmt.Sprintf("No creature found for %q.", args[0]))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Only show creatures with one of these types (repeatable)")

	return cmd
}

// displaySearchResult prints the result list, or an empty-state message that
// says whether the type filter hid anything.
func displaySearchResult(w io.Writer, result *handlers.SearchResult, favorites *handlers.FavoritesHandler, emptyMessage string) {
	if len(result.Creatures) == 0 {
		if result.Filtered() {
			renderEmptyState(w, fmt.Sprintf("%d result(s) hidden by the type filter.", result.Unfiltered))
			return
		}
		renderEmptyState(w, emptyMessage)
		return
	}

	renderCreatureList(w, result.Creatures, favoriteLookup(favorites))
	if result.Filtered() {
		renderEmptyState(w, fmt.Sprintf("%d of %d shown (type filter).", len(result.Creatures), result.Unfiltered))
	}
}

func favoriteLookup(favorites *handlers.FavoritesHandler) func(int) bool {
	if favorites == nil {
		return nil
	}
	return favorites.IsFavorite
}
