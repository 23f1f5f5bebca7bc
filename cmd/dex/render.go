package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// Type badge colors, one per tag.
var typeColors = map[entities.TypeTag]lipgloss.Color{
	entities.TypeNormal:   lipgloss.Color("#9CA3AF"),
	entities.TypeFire:     lipgloss.Color("#EF4444"),
	entities.TypeWater:    lipgloss.Color("#3B82F6"),
	entities.TypeElectric: lipgloss.Color("#FACC15"),
	entities.TypeGrass:    lipgloss.Color("#22C55E"),
	entities.TypeIce:      lipgloss.Color("#93C5FD"),
	entities.TypeFighting: lipgloss.Color("#B91C1C"),
	entities.TypePoison:   lipgloss.Color("#A855F7"),
	entities.TypeGround:   lipgloss.Color("#CA8A04"),
	entities.TypeFlying:   lipgloss.Color("#818CF8"),
	entities.TypePsychic:  lipgloss.Color("#EC4899"),
	entities.TypeBug:      lipgloss.Color("#4ADE80"),
	entities.TypeRock:     lipgloss.Color("#854D0E"),
	entities.TypeGhost:    lipgloss.Color("#7E22CE"),
	entities.TypeDragon:   lipgloss.Color("#4338CA"),
	entities.TypeDark:     lipgloss.Color("#1F2937"),
	entities.TypeSteel:    lipgloss.Color("#6B7280"),
	entities.TypeFairy:    lipgloss.Color("#F9A8D4"),
}

var (
	unknownTypeColor = lipgloss.Color("#6B7280")

	nameStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	higherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	lowerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	winnerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FACC15"))
	favoriteMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render("♥")
)

const artworkPlaceholder = "(no artwork available)"

// displayName turns a slug like "mr-mime" into "Mr Mime".
func displayName(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func typeBadge(t entities.TypeTag) string {
	color, ok := typeColors[t]
	if !ok {
		color = unknownTypeColor
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		Render(string(t))
}

func typeBadges(types []entities.TypeTag) string {
	badges := make([]string, len(types))
	for i, t := range types {
		badges[i] = typeBadge(t)
	}
	return strings.Join(badges, " ")
}

// creatureLine renders one creature as a single list row.
func creatureLine(c entities.Creature, favorite bool) string {
	mark := " "
	if favorite {
		mark = favoriteMark
	}
	return fmt.Sprintf("%s #%03d %s %s %s",
		mark,
		c.ID,
		nameStyle.Render(displayName(c.Name)),
		typeBadges(c.Types),
		mutedStyle.Render(fmt.Sprintf("total %d", services.TotalStats(c))),
	)
}

func renderCreatureList(w io.Writer, creatures []entities.Creature, isFavorite func(int) bool) {
	for i, c := range creatures {
		fav := isFavorite != nil && isFavorite(c.ID)
		fmt.Fprintf(w, "%2d. %s\n", i+1, creatureLine(c, fav))
	}
}

// renderEmptyState prints a friendly message in place of a result list.
func renderEmptyState(w io.Writer, message string) {
	fmt.Fprintln(w, mutedStyle.Render(message))
}

func renderStats(w io.Writer, c entities.Creature) {
	for _, key := range entities.AllStatKeys {
		fmt.Fprintf(w, "  %-16s %3d\n", key, c.Stats.Get(key))
	}
	fmt.Fprintf(w, "  %-16s %3d\n", "total", services.TotalStats(c))
}

func renderDetails(w io.Writer, details *services.CreatureDetails, favorite bool) {
	c := details.Creature
	fmt.Fprintln(w, creatureLine(c, favorite))

	if details.Species != nil && details.Species.Genus != "" {
		fmt.Fprintf(w, "  %s\n", mutedStyle.Render(details.Species.Genus))
	}
	fmt.Fprintln(w)

	if c.HasArtwork() {
		fmt.Fprintf(w, "  artwork: %s\n", c.ArtworkURL)
	} else {
		fmt.Fprintf(w, "  artwork: %s\n", artworkPlaceholder)
	}
	fmt.Fprintf(w, "  height:  %.1f m\n", c.HeightMeters())
	fmt.Fprintf(w, "  weight:  %.1f kg\n", c.WeightKilograms())
	if c.BaseExperience > 0 {
		fmt.Fprintf(w, "  base xp: %d\n", c.BaseExperience)
	}

	if len(c.Abilities) > 0 {
		names := make([]string, len(c.Abilities))
		for i, a := range c.Abilities {
			names[i] = displayName(a.Name)
			if a.IsHidden {
				names[i] += " (hidden)"
			}
		}
		fmt.Fprintf(w, "  abilities: %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintln(w)
	renderStats(w, c)

	if details.Species != nil {
		if details.Species.Description != "" {
			fmt.Fprintf(w, "\n  %s\n", details.Species.Description)
		}
		if len(details.Species.Varieties) > 1 {
			forms := make([]string, len(details.Species.Varieties))
			for i, v := range details.Species.Varieties {
				forms[i] = v.Name
			}
			fmt.Fprintf(w, "\n  forms: %s\n", strings.Join(forms, ", "))
		}
	}
}

func outcomeMark(o entities.StatOutcome) string {
	switch o {
	case entities.OutcomeHigher:
		return higherStyle.Render("▲")
	case entities.OutcomeLower:
		return lowerStyle.Render("▼")
	default:
		return mutedStyle.Render("=")
	}
}

func renderComparison(w io.Writer, cmp *entities.Comparison) {
	a, b := displayName(cmp.A.Name), displayName(cmp.B.Name)
	fmt.Fprintf(w, "%-16s %12s  %-12s\n", "", a, b)
	for _, s := range cmp.Stats {
		fmt.Fprintf(w, "%-16s %12d %s %-12d %s\n", s.Key, s.A, outcomeMark(s.Outcome), s.B,
			mutedStyle.Render(fmt.Sprintf("%+d", s.Delta)))
	}
	fmt.Fprintf(w, "%-16s %12d   %-12d\n\n", "total", cmp.TotalA, cmp.TotalB)

	switch cmp.Winner {
	case entities.WinnerA:
		fmt.Fprintln(w, winnerStyle.Render(a+" wins"))
	case entities.WinnerB:
		fmt.Fprintln(w, winnerStyle.Render(b+" wins"))
	default:
		fmt.Fprintln(w, winnerStyle.Render("It's a tie"))
	}
}
