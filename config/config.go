// Package config holds runtime settings for event-cards.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robertmeta/event-cards/feed"
	"github.com/robertmeta/event-cards/model"
	"github.com/robertmeta/event-cards/paginate"
	"github.com/rs/zerolog"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	Source           string
	Namespace        string
	FallbackImage    string
	PageSize         string
	Timezone         string
	Timeout          time.Duration
	LogLevel         string
	PreserveExpanded bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Source:        feed.DefaultSource,
		Namespace:     feed.DefaultNamespace,
		FallbackImage: model.DefaultImage,
		PageSize:      "all",
		Timezone:      "Local",
		Timeout:       30 * time.Second,
		LogLevel:      "info",
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("feed source is required")
	}
	if c.Namespace == "" {
		return errors.New("namespace is required")
	}
	if _, err := paginate.ParsePageSize(c.PageSize); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Location resolves Timezone; "" and "Local" mean the system zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// InitialPageSize returns the parsed PageSize. Call Validate first.
func (c Config) InitialPageSize() paginate.PageSize {
	size, err := paginate.ParsePageSize(c.PageSize)
	if err != nil {
		return paginate.All
	}
	return size
}

// FeedOptions converts the settings into feed.Options.
func (c Config) FeedOptions() (feed.Options, error) {
	loc, err := c.Location()
	if err != nil {
		return feed.Options{}, err
	}
	return feed.Options{
		Namespace:     c.Namespace,
		FallbackImage: c.FallbackImage,
		Location:      loc,
	}, nil
}
