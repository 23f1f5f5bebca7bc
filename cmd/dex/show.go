package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Show details, stats and species info for a creature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				result := d.DetailsHandler.Handle(ctx, args[0])
				if !result.Found() {
					renderEmptyState(os.Stdout, fmt.Sprintf("No creature found for %q.", args[0]))
					return nil
				}

				renderDetails(os.Stdout, result.Details, result.Favorite)
				return nil
			})
		},
	}
}
