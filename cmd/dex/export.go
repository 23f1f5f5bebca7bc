package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

type exportFlags struct {
	format string
	output string
}

func newFavoritesExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export favorites to file",
		Long:  "Exports favorites to JSON, CSV, or markdown format. JSON and CSV exports can be imported again.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		favorites := d.FavoritesHandler.List()
		if len(favorites) == 0 {
			renderEmptyState(os.Stderr, "No favorites to export.")
			return nil
		}
		return export(favorites, flags)
	})
}

func export(favorites []entities.Creature, flags exportFlags) (err error) {
	var w io.Writer
	var f *os.File

	if flags.output != "" {
		f, err = os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := formatFavorites(w, flags.format, favorites); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if flags.output != "" {
		fmt.Printf("Exported %d favorites to %s\n", len(favorites), flags.output)
	}

	return nil
}

func formatFavorites(w io.Writer, format string, favorites []entities.Creature) error {
	switch format {
	case "json":
		return formatJSON(w, favorites)
	case "csv":
		return formatCSV(w, favorites)
	case "markdown":
		return formatMarkdown(w, favorites)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func typeNames(types []entities.TypeTag) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func formatJSON(w io.Writer, favorites []entities.Creature) error {
	type exportCreature struct {
		ID    int      `json:"id"`
		Name  string   `json:"name"`
		Types []string `json:"types"`
		Total int      `json:"total"`
	}

	exported := make([]exportCreature, 0, len(favorites))
	for _, c := range favorites {
		exported = append(exported, exportCreature{
			ID:    c.ID,
			Name:  c.Name,
			Types: typeNames(c.Types),
			Total: services.TotalStats(c),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exported)
}

func formatCSV(w io.Writer, favorites []entities.Creature) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "name", "types", "total"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, c := range favorites {
		row := []string{
			strconv.Itoa(c.ID),
			c.Name,
			strings.Join(typeNames(c.Types), "/"),
			strconv.Itoa(services.TotalStats(c)),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, favorites []entities.Creature) error {
	if _, err := fmt.Fprintf(w, "# Favorites\n\nTotal: %d\n\n", len(favorites)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| # | Name | Types | Total |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|---|------|-------|-------|\n"); err != nil {
		return err
	}

	for _, c := range favorites {
		if _, err := fmt.Fprintf(w, "| %d | %s | %s | %d |\n",
			c.ID,
			escapeMarkdown(displayName(c.Name)),
			strings.Join(typeNames(c.Types), ", "),
			services.TotalStats(c),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

type importFlags struct {
	format string
	dryRun bool
}

func newFavoritesImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import favorites from a JSON or CSV file",
		Long:  "Imports ids or names from a JSON array or a CSV file with an id or name column. Entries are fetched and appended in file order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "Input format (json, csv, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Resolve entries without saving")

	return cmd
}

func runImport(cmd *cobra.Command, path string, flags importFlags) error {
	ctx := cmd.Context()
	return withDeps(ctx, func(d *Deps) error {
		result, err := d.FavoritesHandler.Import(ctx, path, handlers.ImportOptions{
			Format: flags.format,
			DryRun: flags.dryRun,
		})
		if err != nil {
			return err
		}

		displayImportResult(os.Stdout, result, flags.dryRun)
		return nil
	})
}

func displayImportResult(w io.Writer, result *handlers.ImportResult, dryRun bool) {
	verb := "Imported"
	if dryRun {
		verb = "Would import"
	}
	fmt.Fprintf(w, "%s %d, skipped %d", verb, result.Imported, result.Skipped)
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, ", %d failed", len(result.Errors))
	}
	fmt.Fprintln(w)

	for _, e := range result.Errors {
		if e.Key != "" {
			fmt.Fprintf(w, "  entry %d (%s): %s\n", e.LineNum, e.Key, e.Message)
		} else {
			fmt.Fprintf(w, "  entry %d: %s\n", e.LineNum, e.Message)
		}
	}
}
