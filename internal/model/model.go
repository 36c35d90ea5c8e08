package model

import "time"

// Source is one named feed endpoint of the registry.
type Source struct {
	Name string
	URL  string
}

// Entry is one feed item. Published is always UTC.
type Entry struct {
	Title     string
	Link      string
	Published time.Time
}

// Section holds the rendered bullet lines of one source, in feed order.
type Section struct {
	Source string
	Items  []string
}
