package cmd

import (
	"github.com/urfave/cli/v3"

	"moviegrip/internal/config"
)

// NewRootCommand builds the moviegrip command line
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "moviegrip",
		Usage: "Browse and search movies from the terminal",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  "storage",
				Usage: "Search-count store: sqlite or memory (overrides the config)",
			},
		},
		Action: RunTUI,
		Commands: []*cli.Command{
			SearchCommand(),
			TrendingCommand(),
		},
	}
}
