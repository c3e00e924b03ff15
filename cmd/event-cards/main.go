package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/robertmeta/event-cards/config"
	"github.com/robertmeta/event-cards/feed"
	"github.com/robertmeta/event-cards/logging"
	"github.com/robertmeta/event-cards/model"
	"github.com/robertmeta/event-cards/store"
	"github.com/robertmeta/event-cards/tui"
	"github.com/robertmeta/event-cards/view"
)

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitDataError    = 3
)

func main() {
	defaults := config.Default()

	app := &cli.App{
		Name:    "event-cards",
		Usage:   "Browse, filter and page through an RSS events feed",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"f"},
				Value:   defaults.Source,
				Usage:   "Feed file path or http(s) URL",
				EnvVars: []string{"EVENT_CARDS_SOURCE"},
			},
			&cli.StringFlag{
				Name:    "namespace",
				Value:   defaults.Namespace,
				Usage:   "Namespace prefix of the start and location elements",
				EnvVars: []string{"EVENT_CARDS_NAMESPACE"},
			},
			&cli.StringFlag{
				Name:    "fallback-image",
				Value:   defaults.FallbackImage,
				Usage:   "Image used for events without an enclosure",
				EnvVars: []string{"EVENT_CARDS_FALLBACK_IMAGE"},
			},
			&cli.StringFlag{
				Name:    "timezone",
				Aliases: []string{"tz"},
				Value:   defaults.Timezone,
				Usage:   "Time zone for parsing and displaying dates",
				EnvVars: []string{"EVENT_CARDS_TIMEZONE"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   defaults.Timeout,
				Usage:   "Timeout for fetching the feed",
				EnvVars: []string{"EVENT_CARDS_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   defaults.LogLevel,
				Usage:   "Diagnostic log level (debug, info, warn, error)",
				EnvVars: []string{"EVENT_CARDS_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print one page of events",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "title",
						Aliases: []string{"t"},
						Usage:   "Only events whose title contains this text",
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"D"},
						Usage:   "Only events whose description contains this text",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Only events starting on this day (e.g. 2024-03-15, March 15, 2024)",
					},
					&cli.StringFlag{
						Name:    "page-size",
						Aliases: []string{"n"},
						Value:   defaults.PageSize,
						Usage:   "Events per page: all or a positive number",
						EnvVars: []string{"EVENT_CARDS_PAGE_SIZE"},
					},
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Value:   1,
						Usage:   "Page to show",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"o"},
						Value:   "text",
						Usage:   "Output format: text, html or json",
					},
					&cli.BoolFlag{
						Name:  "expand",
						Usage: "Show descriptions (text and html formats)",
					},
				},
				Action: listEvents,
			},
			{
				Name:  "browse",
				Usage: "Interactive event browser",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "page-size",
						Aliases: []string{"n"},
						Value:   defaults.PageSize,
						Usage:   "Initial events per page: all or a positive number",
						EnvVars: []string{"EVENT_CARDS_PAGE_SIZE"},
					},
					&cli.BoolFlag{
						Name:    "preserve-expanded",
						Usage:   "Keep descriptions expanded across page changes",
						EnvVars: []string{"EVENT_CARDS_PRESERVE_EXPANDED"},
					},
					&cli.StringFlag{
						Name:  "log-file",
						Usage: "Write diagnostics to this file while the browser runs",
					},
				},
				Action: browseEvents,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneralError)
	}
}

func getConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Config{
		Source:           c.String("source"),
		Namespace:        c.String("namespace"),
		FallbackImage:    c.String("fallback-image"),
		PageSize:         c.String("page-size"),
		Timezone:         c.String("timezone"),
		Timeout:          c.Duration("timeout"),
		LogLevel:         c.String("log-level"),
		PreserveExpanded: c.Bool("preserve-expanded"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getFetcher(cfg config.Config) (*feed.Fetcher, error) {
	opts, err := cfg.FeedOptions()
	if err != nil {
		return nil, err
	}
	return feed.NewFetcher(opts), nil
}

// fetchEvents performs the single startup load. Failures are logged and yield no events.
func fetchEvents(ctx context.Context, cfg config.Config, fetcher *feed.Fetcher, log zerolog.Logger) ([]model.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	events, err := fetcher.Fetch(ctx, cfg.Source)
	if err != nil {
		log.Error().Err(err).Str("source", cfg.Source).Msg("error fetching or parsing feed")
		return nil, err
	}
	log.Debug().Int("events", len(events)).Str("source", cfg.Source).Msg("feed loaded")
	return events, nil
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func listEvents(c *cli.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	q, err := store.BuildQuery(c.String("title"), c.String("description"), c.String("date"), cfg.PageSize, c.Int("page"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Invalid query options: %v", err), ExitUsageError)
	}

	format := c.String("format")
	if format != "text" && format != "html" && format != "json" {
		return cli.Exit(fmt.Sprintf("Unknown format %q (expected text, html or json)", format), ExitUsageError)
	}

	fetcher, err := getFetcher(cfg)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}

	// A failed load still renders an empty page; the exit code reports the failure.
	events, loadErr := fetchEvents(c.Context, cfg, fetcher, log)

	loc, _ := cfg.Location()
	s := store.New(events, loc)
	out := q.Run(s)
	if out.DateIgnored {
		log.Warn().Str("date", q.Criteria.Date).Msg(view.MsgInvalidDate)
	}
	if out.NoResults {
		log.Warn().Msg(view.MsgNoResults)
	}

	if err := render(os.Stdout, format, s, c.Bool("expand")); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to render events: %v", err), ExitGeneralError)
	}

	if loadErr != nil {
		return cli.Exit(fmt.Sprintf("Failed to load feed: %v", loadErr), ExitDataError)
	}
	return nil
}

func render(w io.Writer, format string, s *store.Store, expand bool) error {
	page := s.Page()
	st := s.Status()

	var deck view.Deck
	deck.Build(page.Items)
	if expand {
		for i := range deck.Cards {
			deck.Toggle(i)
		}
	}

	switch format {
	case "json":
		return outputJSON(map[string]interface{}{
			"shown":       st.Shown,
			"total":       st.Total,
			"page":        st.Page,
			"total_pages": st.TotalPages,
			"page_size":   st.PageSize.String(),
			"criteria":    s.Criteria(),
			"events":      page.Items,
		})
	case "html":
		r, err := view.NewHTMLRenderer("Events")
		if err != nil {
			return err
		}
		return r.Render(w, &deck, st)
	default:
		return view.NewTextRenderer(view.PlainTheme(), 0).Render(w, &deck, st)
	}
}

func browseEvents(c *cli.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}

	fetcher, err := getFetcher(cfg)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}

	log := logging.Discard()
	if path := c.String("log-file"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Failed to open log file: %v", err), ExitDataError)
		}
		defer file.Close()
		log = logging.New(file, cfg.LogLevel)
	}

	loc, _ := cfg.Location()
	load := func(ctx context.Context) ([]model.Event, error) {
		return fetchEvents(ctx, cfg, fetcher, log)
	}

	m := tui.NewModel(load, tui.Options{
		Location:         loc,
		PageSize:         cfg.InitialPageSize(),
		PreserveExpanded: cfg.PreserveExpanded,
		Theme:            view.DefaultTheme(),
		Logger:           log,
	})

	if err := tui.Run(m); err != nil {
		return cli.Exit(fmt.Sprintf("Browser failed: %v", err), ExitGeneralError)
	}
	return nil
}
