// Package catalog ships the built-in source catalog as an embedded YAML seed.
// Built-in sources are static: they are never persisted, merged with, or
// overridden by user-added custom sources.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"techdiet/internal/domain/entity"
)

//go:embed sources.yaml
var sourcesYAML []byte

type seedFile struct {
	Sources []seedSource `yaml:"sources"`
}

type seedSource struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Frequency   string   `yaml:"frequency"`
	PublishDays []int    `yaml:"publish_days"`
	Duration    string   `yaml:"duration"`
	Topics      []string `yaml:"topics"`
	BestFor     []string `yaml:"best_for"`
	URL         string   `yaml:"url"`
}

var (
	once     sync.Once
	builtins []*entity.MediaSource
	loadErr  error
)

// BuiltIn returns the built-in sources in catalog order. The seed is parsed
// once; a malformed seed is a build defect, so the error is returned rather
// than papered over.
func BuiltIn() ([]*entity.MediaSource, error) {
	once.Do(func() {
		builtins, loadErr = parse(sourcesYAML)
	})
	return builtins, loadErr
}

func parse(data []byte) ([]*entity.MediaSource, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal seed catalog: %w", err)
	}

	sources := make([]*entity.MediaSource, 0, len(file.Sources))
	for _, s := range file.Sources {
		days := make([]time.Weekday, 0, len(s.PublishDays))
		for _, d := range s.PublishDays {
			days = append(days, time.Weekday(d))
		}
		src := &entity.MediaSource{
			ID:          s.ID,
			Name:        s.Name,
			Type:        entity.MediaType(s.Type),
			Frequency:   s.Frequency,
			PublishDays: days,
			Duration:    s.Duration,
			Topics:      s.Topics,
			BestFor:     s.BestFor,
			URL:         s.URL,
			BuiltIn:     true,
		}
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("seed source %q: %w", s.ID, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}
