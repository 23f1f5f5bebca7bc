package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
)

func newCompareCmd() *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two creatures stat by stat",
		Long:  "Compares base stats side by side. The creature with the higher stat total wins.",
		Args: func(cmd *cobra.Command, args []string) error {
			if random {
				return cobra.NoArgs(cmd, args)
			}
			if len(args) != 2 {
				return errors.New("compare needs two creatures, or --random")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				var result *handlers.CompareResult
				if random {
					result = d.CompareHandler.HandleRandom(ctx)
				} else {
					result = d.CompareHandler.Handle(ctx, args[0], args[1])
				}

				if result.Comparison == nil {
					if random {
						renderEmptyState(os.Stdout, "Could not fetch two random creatures. Try again.")
					} else {
						renderEmptyState(os.Stdout, fmt.Sprintf("Not found: %s.", strings.Join(result.Missing, ", ")))
					}
					return nil
				}

				renderComparison(os.Stdout, result.Comparison)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&random, "random", "r", false, "Compare two random creatures")

	return cmd
}
