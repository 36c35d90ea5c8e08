package core

import (
	"context"
	"time"

	"news-digest/internal/digest"
	"news-digest/internal/logging"
	"news-digest/internal/model"
	"news-digest/internal/parser"
)

const Window = 24 * time.Hour

type Fetcher interface {
	Get(ctx context.Context, url string) (int, []byte, error)
}

type Collector struct {
	sources []model.Source
	fetcher Fetcher
	logger  *logging.Logger
}

func NewCollector(sources []model.Source, fetcher Fetcher, logger *logging.Logger) *Collector {
	return &Collector{
		sources: sources,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Collect walks the sources in order and returns one section per source with
// at least one entry published at or after now-24h. A failing source is
// logged and skipped.
func (c *Collector) Collect(ctx context.Context, now time.Time) []model.Section {
	cutoff := now.UTC().Add(-Window)
	sections := make([]model.Section, 0, len(c.sources))
	for _, src := range c.sources {
		if ctx.Err() != nil {
			c.logger.Warn("collect cancelled", logging.Field{Key: "source", Val: src.Name}, logging.Field{Key: "err", Val: ctx.Err()})
			break
		}
		start := time.Now()
		items, ok := c.fetchOnce(ctx, src, cutoff)
		if !ok {
			continue
		}
		c.logger.Info("fetch done", logging.Field{Key: "source", Val: src.Name}, logging.Field{Key: "kept", Val: len(items)}, logging.Field{Key: "elapsed_ms", Val: time.Since(start).Milliseconds()})
		if len(items) > 0 {
			sections = append(sections, model.Section{Source: src.Name, Items: items})
		}
	}
	return sections
}

func (c *Collector) fetchOnce(ctx context.Context, src model.Source, cutoff time.Time) ([]string, bool) {
	status, body, err := c.fetcher.Get(ctx, src.URL)
	if err != nil {
		c.logger.Error("fetch failed", logging.Field{Key: "source", Val: src.Name}, logging.Field{Key: "status", Val: status}, logging.Field{Key: "err", Val: err})
		return nil, false
	}

	entries, dropped, err := parser.ParseFeed(body)
	if err != nil {
		c.logger.Error("parse failed", logging.Field{Key: "source", Val: src.Name}, logging.Field{Key: "err", Val: err})
		return nil, false
	}
	if dropped > 0 {
		c.logger.Warn("entries without publish time", logging.Field{Key: "source", Val: src.Name}, logging.Field{Key: "dropped", Val: dropped})
	}
	c.logger.Debug("parsed", logging.Field{Key: "source", Val: src.Name}, logging.Field{Key: "count", Val: len(entries)})

	var items []string
	for _, e := range Recent(entries, cutoff) {
		if e.Link == "" {
			continue
		}
		items = append(items, digest.Bullet(e))
	}
	return items, true
}

// Recent keeps entries published at or after cutoff, preserving order.
func Recent(entries []model.Entry, cutoff time.Time) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if e.Published.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}
