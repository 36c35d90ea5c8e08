// Package digest renders collected sections into a Slack mrkdwn message.
package digest

import (
	"strings"
	"time"

	"news-digest/internal/model"
)

const (
	NoNewsText = ":zzz: No significant news found for your keywords in the last 24 hours."
	DateLayout = "January 02, 2006"
)

var titleEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"|", "¦",
)

// link delimiters and whitespace are percent-encoded so the URL cannot end
// the <url|text> markup early
var linkEscaper = strings.NewReplacer(
	"|", "%7C",
	"<", "%3C",
	">", "%3E",
	" ", "%20",
	"\t", "%09",
	"\r", "%0D",
	"\n", "%0A",
)

// Bullet renders one entry as a single-line Slack link.
func Bullet(e model.Entry) string {
	link := linkEscaper.Replace(strings.TrimSpace(e.Link))
	title := strings.Join(strings.Fields(e.Title), " ")
	if title == "" {
		title = link
	}
	return "• <" + link + "|" + titleEscaper.Replace(title) + ">"
}

// Format builds the digest text. Empty sections are skipped; with nothing
// left the fixed no-news text is returned.
func Format(sections []model.Section, today time.Time) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		if len(s.Items) == 0 {
			continue
		}
		blocks = append(blocks, "*"+s.Source+"*\n"+strings.Join(s.Items, "\n"))
	}
	if len(blocks) == 0 {
		return NoNewsText
	}
	return Header(today) + "\n\n" + strings.Join(blocks, "\n\n")
}

func Header(today time.Time) string {
	return ":newspaper: *Hourly News Digest - " + today.Format(DateLayout) + "*"
}
