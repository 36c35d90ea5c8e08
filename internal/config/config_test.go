package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingWebhook(t *testing.T) {
	t.Setenv(EnvWebhookURL, "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingWebhook))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvWebhookURL, " https://hooks.slack.com/services/T000/B000/XXXX ")
	t.Setenv(EnvLogJSON, "true")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.slack.com/services/T000/B000/XXXX", cfg.WebhookURL)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "relative webhook", env: map[string]string{EnvWebhookURL: "/services/T000"}},
		{name: "ftp webhook", env: map[string]string{EnvWebhookURL: "ftp://hooks.example.com/x"}},
		{name: "bad log json", env: map[string]string{EnvWebhookURL: "https://hooks.example.com/x", EnvLogJSON: "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(func(key string) string { return tt.env[key] })
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrMissingWebhook))
		})
	}
}

func TestSources_Embedded(t *testing.T) {
	sources, err := Sources()
	require.NoError(t, err)
	require.Len(t, sources, 13)

	assert.Equal(t, "Bridge.xyz (Stripe)", sources[0].Name)
	assert.Equal(t, "BVNK", sources[1].Name)
	assert.Equal(t, "https://news.google.com/rss/search?q=%22BVNK%22&hl=en-US&gl=US&ceid=US:en", sources[1].URL)
	assert.Equal(t, "Wise (TransferWise)", sources[12].Name)

	// callers get their own copy
	sources[0].Name = "mutated"
	again, err := Sources()
	require.NoError(t, err)
	assert.Equal(t, "Bridge.xyz (Stripe)", again[0].Name)
}

func TestParseSources_Validation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "sources: []", want: "no sources configured"},
		{name: "blank name", raw: "sources:\n  - name: ' '\n    url: https://a.example\n", want: "sources[0].name required"},
		{name: "missing url", raw: "sources:\n  - name: A\n", want: "sources[0].url required"},
		{name: "duplicate", raw: "sources:\n  - name: A\n    url: https://a.example\n  - name: A\n    url: https://b.example\n", want: "duplicated"},
		{name: "bad scheme", raw: "sources:\n  - name: A\n    url: file:///etc/passwd\n", want: "unsupported scheme"},
		{name: "not yaml", raw: "sources: [", want: "decode sources"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSources([]byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSources_KeepsOrder(t *testing.T) {
	raw := "sources:\n  - name: Zeta\n    url: https://z.example/rss\n  - name: Alpha\n    url: https://a.example/rss\n"

	sources, err := ParseSources([]byte(raw))
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "Zeta", sources[0].Name)
	assert.Equal(t, "Alpha", sources[1].Name)
}
