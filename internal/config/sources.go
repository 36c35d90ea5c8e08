package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"news-digest/internal/model"
)

//go:embed sources.yaml
var sourcesYAML []byte

type SourceConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type registryFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

// Sources returns the compiled-in feed registry in declaration order. Each
// call decodes a fresh copy.
func Sources() ([]model.Source, error) {
	return ParseSources(sourcesYAML)
}

func ParseSources(raw []byte) ([]model.Source, error) {
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode sources: %w", err)
	}
	if len(file.Sources) == 0 {
		return nil, errors.New("no sources configured")
	}
	seen := make(map[string]bool, len(file.Sources))
	out := make([]model.Source, 0, len(file.Sources))
	for i, src := range file.Sources {
		name := strings.TrimSpace(src.Name)
		if name == "" {
			return nil, fmt.Errorf("sources[%d].name required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("sources[%d].name %q duplicated", i, name)
		}
		seen[name] = true
		if strings.TrimSpace(src.URL) == "" {
			return nil, fmt.Errorf("sources[%d].url required", i)
		}
		if err := validateHTTPURL(src.URL); err != nil {
			return nil, fmt.Errorf("sources[%d].url: %w", i, err)
		}
		out = append(out, model.Source{Name: name, URL: strings.TrimSpace(src.URL)})
	}
	return out, nil
}
