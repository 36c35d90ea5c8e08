package parser

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"news-digest/internal/model"
)

// ParseFeed decodes an RSS, Atom or JSON feed document. Items without a
// usable publication timestamp are skipped and counted in dropped; the
// remaining entries keep feed order and carry UTC timestamps.
func ParseFeed(body []byte) (entries []model.Entry, dropped int, err error) {
	fp := gofeed.NewParser()
	feed, err := fp.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	entries = make([]model.Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		published, ok := publishedAt(item)
		if !ok {
			dropped++
			continue
		}
		entries = append(entries, model.Entry{
			Title:     strings.TrimSpace(item.Title),
			Link:      strings.TrimSpace(item.Link),
			Published: published,
		})
	}
	return entries, dropped, nil
}

func publishedAt(item *gofeed.Item) (time.Time, bool) {
	if item.PublishedParsed != nil && !item.PublishedParsed.IsZero() {
		return item.PublishedParsed.UTC(), true
	}
	t := parseTimeString(item.Published)
	if t.IsZero() {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// bare integers below this (2001-09-09) are not taken as epoch seconds
const minEpochSeconds = 1e9

// parseTimeString covers the few layouts gofeed leaves unparsed. Values
// without a zone are taken as UTC.
func parseTimeString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && i >= minEpochSeconds {
		return fromUnix(i)
	}
	return time.Time{}
}

func fromUnix(v int64) time.Time {
	if v > 1e12 {
		return time.UnixMilli(v).UTC()
	}
	return time.Unix(v, 0).UTC()
}
