package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRandomCmd() *cobra.Command {
	var (
		count int
		types []string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random selection of creatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := parseTypeFlags(types)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if count <= 0 {
					count = d.Config.Search.RandomCount
				}

				result := d.SearchHandler.HandleRandom(ctx, count, tags)
				displaySearchResult(os.Stdout, result, d.FavoritesHandler, "No creatures could be fetched. Try again.")
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of creatures to draw (default from config)")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Only show creatures with one of these types (repeatable)")

	return cmd
}
