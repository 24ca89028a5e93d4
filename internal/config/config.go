// Package config loads the embedded cue catalog.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/minicodemonkey/bells/embed"
	"github.com/minicodemonkey/bells/internal/bell"
	"gopkg.in/yaml.v3"
)

// Catalog holds the sample rate, timbre and cue list used to generate bells.
type Catalog struct {
	SampleRate int         `yaml:"sampleRate"`
	Timbre     bell.Timbre `yaml:"timbre"`
	Cues       []Cue       `yaml:"cues"`
}

// Cue is a single named bell sound.
type Cue struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Frequency   float64 `yaml:"frequency"`
	Duration    float64 `yaml:"duration"`
}

// Request returns the tone request for the cue at sampleRate.
func (c Cue) Request(sampleRate int) bell.Request {
	return bell.Request{Duration: c.Duration, Frequency: c.Frequency, SampleRate: sampleRate}
}

// Default returns the canonical catalog without reading the embedded document.
func Default() *Catalog {
	return &Catalog{
		SampleRate: bell.DefaultSampleRate,
		Timbre:     bell.DefaultTimbre(),
		Cues: []Cue{
			{Name: "start", Description: "Starting meditation", Frequency: 528, Duration: 2.5},
			{Name: "pause", Description: "Pausing", Frequency: 440, Duration: 1.5},
			{Name: "resume", Description: "Resuming", Frequency: 550, Duration: 2.0},
			{Name: "completion", Description: "Meditation complete", Frequency: 200, Duration: 5.0},
		},
	}
}

// Load parses the embedded cue catalog.
func Load() (*Catalog, error) {
	return Parse(embed.CatalogYAML())
}

// Parse decodes and validates a catalog document.
// A missing sampleRate falls back to bell.DefaultSampleRate.
func Parse(data []byte) (*Catalog, error) {
	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("parsing cue catalog: %w", err)
	}
	if cat.SampleRate == 0 {
		cat.SampleRate = bell.DefaultSampleRate
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks the catalog for values that cannot be synthesized.
func (c *Catalog) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", bell.ErrInvalidParameter, c.SampleRate)
	}
	if len(c.Cues) == 0 {
		return fmt.Errorf("%w: catalog has no cues", bell.ErrInvalidParameter)
	}

	seen := make(map[string]bool, len(c.Cues))
	for i, cue := range c.Cues {
		if cue.Name == "" {
			return fmt.Errorf("%w: cue %d has no name", bell.ErrInvalidParameter, i)
		}
		if filepath.Base(cue.Name) != cue.Name || cue.Name == "." || cue.Name == ".." {
			return fmt.Errorf("%w: cue name %q is not a plain file name", bell.ErrInvalidParameter, cue.Name)
		}
		if seen[cue.Name] {
			return fmt.Errorf("%w: duplicate cue %q", bell.ErrInvalidParameter, cue.Name)
		}
		seen[cue.Name] = true

		if err := cue.Request(c.SampleRate).Validate(); err != nil {
			return fmt.Errorf("cue %q: %w", cue.Name, err)
		}
	}
	return nil
}
