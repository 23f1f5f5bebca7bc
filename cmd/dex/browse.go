package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/application/debounce"
	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
)

type browseFlags struct {
	limit  int
	types  []string
	window time.Duration
}

func newBrowseCmd() *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive prefix search",
		Long:  "Type a name prefix and press Enter to search. Rapid input is debounced and stale results are discarded.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.limit, "limit", "l", 0, "Maximum number of creatures per search (default from config)")
	cmd.Flags().StringSliceVarP(&flags.types, "type", "t", nil, "Only show creatures with one of these types (repeatable)")
	cmd.Flags().DurationVar(&flags.window, "debounce", DefaultBrowseWindow, "Quiet period before a search runs")

	return cmd
}

// browseState holds the interactive session. Output from debounced searches
// arrives on timer goroutines, so writes go through mu.
type browseState struct {
	search    *handlers.SearchHandler
	favorites *handlers.FavoritesHandler
	logger    *zap.Logger
	limit     int
	tags      entities.TagSet

	debouncer *debounce.Debouncer
	gen       debounce.Generation

	mu   sync.Mutex
	out  io.Writer
	last []entities.Creature
}

func runBrowse(cmd *cobra.Command, flags browseFlags) error {
	tags, err := parseTypeFlags(flags.types)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	return withInternalDeps(ctx, func(d *internalDeps) error {
		if err := d.SearchHandler.EnsureIndex(ctx); err != nil {
			return err
		}

		limit := flags.limit
		if limit <= 0 {
			limit = d.Config.Search.DefaultLimit
		}

		state := &browseState{
			search:    d.SearchHandler,
			favorites: d.FavoritesHandler,
			logger:    d.logger,
			limit:     limit,
			tags:      tags,
			debouncer: debounce.New(flags.window),
			out:       os.Stdout,
		}
		defer state.debouncer.Stop()

		unsubscribe := d.favorites.Subscribe(func(favorites []entities.Creature) {
			state.printf("%d favorite(s) saved.\n", len(favorites))
		})
		defer unsubscribe()

		return state.runInputLoop(ctx, os.Stdin)
	})
}

func (s *browseState) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func (s *browseState) runInputLoop(ctx context.Context, in io.Reader) error {
	s.printf("Dex browse. Type a name prefix and press Enter.\n")
	s.printf("Commands: ':fav <n>' to toggle result n, ':favs' to list favorites, ':quit' to exit\n\n")

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if handled, shouldExit := s.handleCommand(ctx, input); handled {
			if shouldExit {
				return nil
			}
			continue
		}

		s.query(ctx, input)
	}

	// Input ended: stop waiting and drop anything still in flight.
	s.debouncer.Stop()
	s.gen.Next()
	return scanner.Err()
}

// handleCommand processes user commands. Returns (handled, shouldExit).
func (s *browseState) handleCommand(ctx context.Context, input string) (bool, bool) {
	fields := strings.Fields(strings.ToLower(input))
	switch fields[0] {
	case ":quit", ":q", "quit", "exit":
		s.debouncer.Stop()
		s.gen.Next()
		s.printf("Goodbye!\n")
		return true, true
	case ":help":
		s.showHelp()
		return true, false
	case ":favs":
		s.showFavorites()
		return true, false
	case ":fav":
		s.toggleResult(ctx, fields[1:])
		return true, false
	default:
		if strings.HasPrefix(fields[0], ":") {
			s.printf("Unknown command %q. Type :help for help.\n", fields[0])
			return true, false
		}
		return false, false
	}
}

func (s *browseState) showHelp() {
	s.printf("Commands:\n")
	s.printf("  <prefix>  - Search names starting with prefix\n")
	s.printf("  :fav <n>  - Save or remove result n of the last search\n")
	s.printf("  :favs     - List favorites\n")
	s.printf("  :quit     - Exit interactive mode\n")
	s.printf("  :help     - Show this help\n")
}

// query schedules a prefix search. Only the latest input within the debounce
// window runs, and its output prints only if no newer query was issued.
func (s *browseState) query(ctx context.Context, prefix string) {
	token := s.gen.Next()
	s.debouncer.Trigger(func() {
		s.runQuery(ctx, prefix, token)
	})
}

func (s *browseState) runQuery(ctx context.Context, prefix string, token uint64) {
	result, err := s.search.HandlePrefix(ctx, prefix, s.limit, s.tags)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.Current(token) {
		s.logger.Debug("discarding stale results", zap.String("prefix", prefix))
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	s.last = result.Creatures
	fmt.Fprintln(s.out)
	displaySearchResult(s.out, result, s.favorites, fmt.Sprintf("No creatures start with %q.", prefix))
	fmt.Fprint(s.out, browsePrompt)
}

func (s *browseState) toggleResult(ctx context.Context, args []string) {
	if len(args) != 1 {
		s.printf("Usage: :fav <n>\n")
		return
	}

	n, err := strconv.Atoi(args[0])
	s.mu.Lock()
	if err != nil || n < 1 || n > len(s.last) {
		count := len(s.last)
		s.mu.Unlock()
		s.printf("No result %s (last search has %d).\n", args[0], count)
		return
	}
	c := s.last[n-1]
	s.mu.Unlock()

	result := s.favorites.Toggle(ctx, strconv.Itoa(c.ID))
	if result.Favorite {
		s.printf("Saved %s.\n", displayName(c.Name))
	} else {
		s.printf("Removed %s.\n", displayName(c.Name))
	}
}

func (s *browseState) showFavorites() {
	favorites := s.favorites.List()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(favorites) == 0 {
		renderEmptyState(s.out, "No favorites yet.")
		return
	}
	renderCreatureList(s.out, favorites, func(int) bool { return true })
}
