package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	var (
		limit int
		types []string
	)

	cmd := &cobra.Command{
		Use:   "find <prefix>",
		Short: "Find creatures whose name starts with a prefix",
		Long:  "Matches the prefix against the full name index and fetches up to --limit creatures concurrently.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := parseTypeFlags(types)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if limit <= 0 {
					limit = d.Config.Search.DefaultLimit
				}

				result, err := d.SearchHandler.HandlePrefix(ctx, args[0], limit, tags)
				if err != nil {
					return err
				}

				displaySearchResult(os.Stdout, result, d.FavoritesHandler,
					fmt.Sprintf("No creatures start with %q.", args[0]))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of creatures to fetch (default from config)")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Only show creatures with one of these types (repeatable)")

	return cmd
}
