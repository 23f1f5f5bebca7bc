package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type tags usable with --type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tDESCRIPTION")
			for _, info := range entities.DefaultTypeTags {
				fmt.Fprintf(w, "%s\t%s\n", typeBadge(info.Tag), info.Description)
			}
			return w.Flush()
		},
	}
}
