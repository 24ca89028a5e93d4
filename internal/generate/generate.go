// Package generate renders every cue in a catalog to a WAV file. It runs
// the cues one after another and reports progress as Events on a channel,
// which the progress view consumes.
package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minicodemonkey/bells/internal/bell"
	"github.com/minicodemonkey/bells/internal/config"
	"github.com/minicodemonkey/bells/internal/log"
	"github.com/minicodemonkey/bells/internal/paths"
	"github.com/minicodemonkey/bells/internal/wav"
)

// EventType identifies the kind of progress event.
type EventType int

const (
	EventStarted EventType = iota
	EventWritten
	EventFailed
)

func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "Started"
	case EventWritten:
		return "Written"
	case EventFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Event reports progress for a single cue.
type Event struct {
	Type    EventType
	Index   int
	Cue     config.Cue
	Path    string
	Samples int
	Bytes   int
	Elapsed time.Duration
	Err     error
}

// Result describes a generated cue file.
type Result struct {
	Path    string
	Samples int
	Bytes   int
}

// Generator writes each cue of a catalog into a directory.
type Generator struct {
	catalog *config.Catalog
	dir     string
	events  chan Event
}

// New creates a Generator writing catalog cues into dir.
func New(catalog *config.Catalog, dir string) *Generator {
	return &Generator{
		catalog: catalog,
		dir:     dir,
		events:  make(chan Event, 2*len(catalog.Cues)+1),
	}
}

// Events returns the channel for receiving progress events.
// It is closed when Run returns.
func (g *Generator) Events() <-chan Event {
	return g.events
}

// Run generates every cue in order. A failing cue does not stop the ones
// after it; the returned error joins all per-cue failures.
func (g *Generator) Run(ctx context.Context) error {
	defer close(g.events)

	var errs []error
	for i, cue := range g.catalog.Cues {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		g.emit(Event{Type: EventStarted, Index: i, Cue: cue})
		start := time.Now()

		res, err := GenerateCue(cue, g.catalog.SampleRate, g.catalog.Timbre, g.dir)
		elapsed := time.Since(start)
		if err != nil {
			log.CueFailed(cue.Name, err)
			g.emit(Event{Type: EventFailed, Index: i, Cue: cue, Path: res.Path, Elapsed: elapsed, Err: err})
			errs = append(errs, err)
			continue
		}

		log.CueWritten(cue.Name, res.Path, res.Samples, res.Bytes, elapsed)
		g.emit(Event{
			Type:    EventWritten,
			Index:   i,
			Cue:     cue,
			Path:    res.Path,
			Samples: res.Samples,
			Bytes:   res.Bytes,
			Elapsed: elapsed,
		})
	}
	return errors.Join(errs...)
}

func (g *Generator) emit(e Event) {
	// The channel holds every event of a run, so sends never block.
	g.events <- e
}

// GenerateCue synthesizes a single cue and writes it into dir.
// The returned Result carries the target path even on failure.
func GenerateCue(cue config.Cue, sampleRate int, timbre bell.Timbre, dir string) (Result, error) {
	res := Result{Path: paths.CuePath(dir, cue.Name)}

	buf, err := bell.Synthesize(cue.Request(sampleRate), timbre)
	if err != nil {
		return res, fmt.Errorf("cue %q: %w", cue.Name, err)
	}
	if err := wav.WriteFile(res.Path, buf, sampleRate); err != nil {
		return res, fmt.Errorf("cue %q: %w", cue.Name, err)
	}

	res.Samples = len(buf)
	res.Bytes = wav.HeaderSize + len(buf)*wav.BitsPerSample/8
	return res, nil
}
