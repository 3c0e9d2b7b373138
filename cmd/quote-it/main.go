package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cloud.google.com/go/civil"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/quote-it/internal"
	"github.com/starford/quote-it/internal/apperr"
	"github.com/starford/quote-it/internal/caldate"
	"github.com/starford/quote-it/internal/quoteservice"
	"github.com/starford/quote-it/internal/storage"
	pkgconfig "github.com/starford/quote-it/pkg/config"
)

var version = "dev"

// loadConfig reads the config file named by --config, or ~/.quote-it/config.yaml
// when present.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()

	if path := cmd.String("config"); path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else {
		dir, err := storage.DefaultDir()
		if err != nil {
			return nil, err
		}
		if err := pkgconfig.LoadOptional(filepath.Join(dir, "config.yaml"), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cmd.Bool("no-color") {
		cfg.App.Color = false
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command, task internal.Task) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, task, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func add(ctx context.Context, cmd *cli.Command) error {
	switch cmd.Args().Len() {
	case 0:
		return nil
	case 1:
	default:
		return apperr.NewUsageError("quote", "expected a single quote argument; wrap the quote in quotation marks")
	}

	task := internal.AddTask{Request: quoteservice.AddRequest{
		Text:      cmd.Args().First(),
		Author:    cmd.String("author"),
		StampDate: cmd.Bool("date"),
	}}
	return run(ctx, cmd, task)
}

// flagLookup returns a flag's value and whether it was given.
type flagLookup func(name string) (string, bool)

// newListRequest maps list flags onto a validated request. Malformed dates and
// invalid combinations are reported here, before any store access.
func newListRequest(author string, lookup flagLookup) (quoteservice.ListRequest, error) {
	req := quoteservice.ListRequest{Author: author}
	for _, d := range []struct {
		name   string
		target *civil.Date
	}{
		{"on", &req.On},
		{"before", &req.Before},
		{"after", &req.After},
	} {
		value, ok := lookup(d.name)
		if !ok {
			continue
		}
		parsed, err := caldate.Parse(d.name, value)
		if err != nil {
			return quoteservice.ListRequest{}, err
		}
		*d.target = parsed
	}

	if err := req.Validate(); err != nil {
		return quoteservice.ListRequest{}, err
	}
	return req, nil
}

func list(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return apperr.NewUsageError("list", "unexpected argument "+cmd.Args().First())
	}

	req, err := newListRequest(cmd.String("author"), func(name string) (string, bool) {
		return cmd.String(name), cmd.IsSet(name)
	})
	if err != nil {
		return err
	}
	return run(ctx, cmd, internal.ListTask{Request: req})
}

func main() {
	cmd := &cli.Command{
		Name:      "quote-it",
		Usage:     "A quoting utility in the terminal",
		Version:   version,
		ArgsUsage: "[quote]",
		Action:    add,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.quote-it/config.yaml",
				Sources:     cli.EnvVars("QUOTE_IT_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured output",
			},
			&cli.StringFlag{
				Name:    "author",
				Aliases: []string{"A"},
				Usage:   "Specify an author",
				Local:   true,
			},
			&cli.BoolFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "Stamp the quote with today's date",
				Local:   true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Lists quotes stored on the device",
				Action: list,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "author",
						Aliases: []string{"A"},
						Usage:   "Lists quotes made by specified author",
					},
					&cli.StringFlag{
						Name:    "before",
						Aliases: []string{"b"},
						Usage:   "Lists quotes dated on or before `MM-DD-YYYY`",
					},
					&cli.StringFlag{
						Name:    "on",
						Aliases: []string{"o"},
						Usage:   "Lists quotes dated exactly `MM-DD-YYYY`",
					},
					&cli.StringFlag{
						Name:    "after",
						Aliases: []string{"a"},
						Usage:   "Lists quotes dated on or after `MM-DD-YYYY`",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
