package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"moviegrip/internal/domain"
	"moviegrip/internal/trending"
)

// TrendingCommand creates the trending command
func TrendingCommand() *cli.Command {
	return &cli.Command{
		Name:  "trending",
		Usage: "Print the most searched terms",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of entries (defaults to trending.limit from the config)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := setup(c)
			if err != nil {
				return err
			}
			defer a.Close()

			limit := c.Int("limit")
			if limit <= 0 {
				limit = a.cfg.Trending.Limit
			}

			entries, err := trending.NewLoader(a.counter, a.bus, limit, a.log).Fetch(ctx)
			if err != nil {
				return fmt.Errorf("loading trending: %w", err)
			}
			printTrending(c.Root().Writer, entries, func(path string) string {
				return a.catalog.PosterURL(path, a.cfg.UI.PosterSize)
			})
			return nil
		},
	}
}

func printTrending(w io.Writer, entries []domain.TrendingEntry, poster func(string) string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No searches recorded yet.")
		return
	}
	fmt.Fprintln(w, "Trending Movies")
	for i, e := range entries {
		title := e.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(w, "%2d. %-24s %4d searches  %s\n", i+1, e.SearchTerm, e.Count, title)
		if url := poster(e.PosterPath); url != "" {
			fmt.Fprintf(w, "    %s\n", url)
		}
	}
}
