package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/jfmyers9/strum/internal/config"
	"github.com/jfmyers9/strum/internal/history"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var (
	searchJSON   bool
	searchRecent bool
	searchWidth  int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search SoundCloud and print the results",
	Long: `Search SoundCloud and print matching tracks, one per line, without
starting the interactive player.

Each line has the form:

  artist - title  3:45

Use --json for machine-readable output including stream and artwork
URLs, and --recent to list recently searched queries instead.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print results as JSON")
	searchCmd.Flags().BoolVar(&searchRecent, "recent", false, "List recent queries instead of searching")
	searchCmd.Flags().IntVar(&searchWidth, "width", 0, "Truncate lines to this display width (0 = no truncation)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := setupLogger(rootLogFile, rootLogLevel, false)
	ctx := rootContext(cmd)

	if searchRecent {
		store, err := history.New(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("failed to open search history: %w", err)
		}
		defer store.Close()

		recent, err := store.Recent(ctx, 20)
		if err != nil {
			return fmt.Errorf("failed to load search history: %w", err)
		}
		for _, q := range recent {
			fmt.Println(q)
		}
		return nil
	}

	query := strings.Join(args, " ")

	client, err := catalog.NewClient(catalog.Config{
		BaseURL:   cfg.Search.BaseURL,
		UserAgent: cfg.Search.UserAgent,
		Timeout:   time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		CacheSize: cfg.Search.CacheSize,
		Resolver:  catalog.TemplateResolver{Template: cfg.Stream.URLTemplate},
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	tracks, err := client.Search(ctx, query)
	if err != nil {
		var searchErr *catalog.SearchError
		if errors.As(err, &searchErr) {
			return fmt.Errorf("search failed: %v", searchErr.Cause)
		}
		return err
	}

	// Record the query once the search succeeded; history failures only
	// cost the suggestion, not the output.
	if store, herr := history.New(cfg.History.Path); herr == nil {
		if rerr := store.Record(ctx, query); rerr != nil {
			logger.Debug().Err(rerr).Msg("Failed to record query history")
		}
		store.Close()
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tracks)
	}

	if len(tracks) == 0 {
		fmt.Fprintln(os.Stderr, "No results")
		return nil
	}

	for _, t := range tracks {
		line := fmt.Sprintf("%s - %s  %s", t.Artist, t.Title, formatClock(t.Duration))
		if searchWidth > 0 {
			line = runewidth.Truncate(line, searchWidth, "...")
		}
		fmt.Println(line)
	}
	return nil
}

// formatClock renders seconds as M:SS, or H:MM:SS for an hour or more.
func formatClock(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
