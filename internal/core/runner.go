package core

import (
	"context"
	"time"

	"news-digest/internal/digest"
	"news-digest/internal/logging"
)

type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Runner executes one collect, format and notify pass.
type Runner struct {
	collector *Collector
	notifier  Notifier
	logger    *logging.Logger
	now       func() time.Time
}

func NewRunner(collector *Collector, notifier Notifier, logger *logging.Logger) *Runner {
	return &Runner{
		collector: collector,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	now := r.now()
	r.logger.Info("fetching news", logging.Field{Key: "sources", Val: len(r.collector.sources)})
	sections := r.collector.Collect(ctx, now)

	if len(sections) == 0 {
		r.logger.Info("no new articles found")
	} else {
		r.logger.Info("found sources with news", logging.Field{Key: "sections", Val: len(sections)})
	}
	text := digest.Format(sections, now.Local())

	if err := r.notifier.Send(ctx, text); err != nil {
		return err
	}
	r.logger.Info("message posted to slack", logging.Field{Key: "bytes", Val: len(text)})
	return nil
}
