package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"moviegrip/internal/browse"
	"moviegrip/internal/domain"
	"moviegrip/internal/pagination"
	"moviegrip/internal/ui/views"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Print one page of results; without a query, popular movies",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "page",
				Usage: "Result page",
				Value: 1,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := setup(c)
			if err != nil {
				return err
			}
			defer a.Close()

			query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			orch := browse.New(a.catalog, a.bus, a.cfg.Search.FailurePolicy, a.log)
			defer orch.Close()

			st, err := runFetch(orch, query, c.Int("page"))
			if err != nil {
				return err
			}
			printPage(c.Root().Writer, st, a.catalog.PosterURL, a.cfg.UI.PosterSize)
			return nil
		},
	}
}

// runFetch drives one fetch through the orchestrator outside the UI loop.
// Successful searches are recorded through the same bus path as in the TUI.
func runFetch(orch *browse.Orchestrator, query string, page int) (browse.State, error) {
	cmd := orch.Fetch(query, page)
	if cmd == nil {
		return browse.State{}, fmt.Errorf("fetch was not started")
	}
	res := cmd()
	msg, ok := res.(browse.ResultMsg)
	if !ok {
		return browse.State{}, fmt.Errorf("unexpected fetch result %T", res)
	}
	orch.Apply(msg)

	st := orch.State()
	if st.Err != "" {
		return st, fmt.Errorf("%s: %w", st.Err, msg.Err)
	}
	return st, nil
}

func printPage(w io.Writer, st browse.State, poster func(path, size string) string, size string) {
	heading := "All Movies"
	if st.Query != "" {
		heading = fmt.Sprintf("Results for %q", st.Query)
	}
	fmt.Fprintf(w, "%s (page %d of %d)\n\n", heading, st.Page, st.TotalPages)

	if len(st.Results) == 0 {
		fmt.Fprintln(w, "No movies found.")
		return
	}

	for i, m := range st.Results {
		fmt.Fprintf(w, "%2d. %s\n", i+1, movieLine(m))
		if url := poster(m.PosterPath, size); url != "" {
			fmt.Fprintf(w, "    %s\n", url)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, pageBarPlain(st.Page, st.TotalPages))
}

func movieLine(m domain.Movie) string {
	return fmt.Sprintf("%s  ★ %s • %s • %s",
		m.Title,
		views.FormatRating(m.VoteAverage),
		views.FormatLanguage(m.OriginalLanguage),
		views.FormatYear(m),
	)
}

// pageBarPlain renders the page bar with the current page in brackets
func pageBarPlain(current, total int) string {
	markers := pagination.Pages(current, total)
	parts := make([]string, len(markers))
	for i, m := range markers {
		if m.Page == current {
			parts[i] = "[" + m.String() + "]"
		} else {
			parts[i] = m.String()
		}
	}
	return strings.Join(parts, " ")
}
