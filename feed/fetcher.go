// Package feed provides event feed loading and parsing for event-cards.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/robertmeta/event-cards/model"
)

// DefaultSource is the feed location used when none is configured.
const DefaultSource = "./events.rss"

// DefaultNamespace is the extension prefix carrying start and location elements.
const DefaultNamespace = "events"

// ErrEmptyContent is returned when there is nothing to parse.
var ErrEmptyContent = errors.New("feed content is empty")

// Options controls how items are converted into events.
type Options struct {
	Namespace     string
	FallbackImage string
	Location      *time.Location
	Client        *http.Client
}

// Fetcher handles loading and parsing event feeds.
type Fetcher struct {
	parser *gofeed.Parser
	opts   Options
}

// NewFetcher creates a new Fetcher. Zero-valued options fall back to defaults.
func NewFetcher(opts Options) *Fetcher {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.FallbackImage == "" {
		opts.FallbackImage = model.DefaultImage
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}

	return &Fetcher{
		parser: gofeed.NewParser(),
		opts:   opts,
	}
}

// Fetch loads the feed from source and parses it into events.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]model.Event, error) {
	content, err := f.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return f.Parse(content)
}

// Load retrieves the raw feed document. source is either an http(s) URL or a file path.
func (f *Fetcher) Load(ctx context.Context, source string) (string, error) {
	if source == "" {
		source = DefaultSource
	}

	if isURL(source) {
		return f.loadURL(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read feed from %s: %w", source, err)
	}
	return string(data), nil
}

func (f *Fetcher) loadURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "event-cards")

	resp, err := f.opts.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to fetch feed from %s: http status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read feed body from %s: %w", url, err)
	}
	return string(data), nil
}

// Parse parses feed content into events in feed order.
func (f *Fetcher) Parse(content string) ([]model.Event, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	parsedFeed, err := f.parser.ParseString(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	events := make([]model.Event, 0, len(parsedFeed.Items))
	for i, item := range parsedFeed.Items {
		events = append(events, f.convertItem(i, item))
	}
	return events, nil
}

// convertItem converts a gofeed.Item to a model.Event. Missing fields get defaults.
func (f *Fetcher) convertItem(id int, item *gofeed.Item) model.Event {
	event := model.Event{
		ID:          id,
		Title:       item.Title,
		Location:    model.DefaultLocation,
		Description: item.Description,
		ImageURL:    f.opts.FallbackImage,
	}

	if event.Title == "" {
		event.Title = model.DefaultTitle
	}
	if event.Description == "" {
		event.Description = model.DefaultDescription
	}

	start, ok := extensionValue(item.Extensions, f.opts.Namespace, "start")
	event.SetStartDate(start, ok, f.opts.Location)

	if location, ok := extensionValue(item.Extensions, f.opts.Namespace, "location"); ok {
		event.Location = location
	}

	if len(item.Enclosures) > 0 && item.Enclosures[0].URL != "" {
		event.ImageURL = item.Enclosures[0].URL
	}

	return event
}

// extensionValue returns the text of the first <ns:name> element on an item.
func extensionValue(exts ext.Extensions, ns, name string) (string, bool) {
	if exts == nil {
		return "", false
	}
	elems, ok := exts[ns][name]
	if !ok || len(elems) == 0 {
		return "", false
	}
	return elems[0].Value, true
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
