package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/minicodemonkey/bells/internal/config"
	"github.com/minicodemonkey/bells/internal/generate"
	"github.com/minicodemonkey/bells/internal/log"
	"github.com/minicodemonkey/bells/internal/paths"
	"github.com/minicodemonkey/bells/internal/tui"
)

func main() {
	log.Init(os.Stderr)
	defer log.Close()

	if err := run(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cat, err := config.Load()
	if err != nil {
		return err
	}

	dir, err := paths.OutputDir()
	if err != nil {
		return err
	}
	log.Info("writing meditation bells to " + dir)

	gen := generate.New(cat, dir)
	if term.IsTerminal(os.Stdout.Fd()) {
		return runInteractive(cat, gen, os.Stderr)
	}
	return runPlain(cat, gen)
}

// runInteractive shows a live cue list while the generator runs.
// Bubble Tea owns the terminal meanwhile, so diagnostics are held back and
// written to logOut once the program has exited.
func runInteractive(cat *config.Catalog, gen *generate.Generator, logOut io.Writer, opts ...tea.ProgramOption) error {
	var held bytes.Buffer
	log.Init(&held)

	errc := make(chan error, 1)
	go func() { errc <- gen.Run(context.Background()) }()

	p := tea.NewProgram(tui.NewModel(cat, gen.Events()), opts...)
	_, runErr := p.Run()
	genErr := <-errc

	log.Init(logOut)
	if _, err := logOut.Write(held.Bytes()); err != nil {
		log.Warnf("flushing held diagnostics: %v", err)
	}

	if runErr != nil {
		return fmt.Errorf("running progress view: %w", runErr)
	}
	return genErr
}

// runPlain prints one line per generated cue.
func runPlain(cat *config.Catalog, gen *generate.Generator) error {
	errc := make(chan error, 1)
	go func() { errc <- gen.Run(context.Background()) }()

	failed := 0
	for e := range gen.Events() {
		if e.Type == generate.EventFailed {
			failed++
		}
		if line := tui.RenderLine(e); line != "" {
			fmt.Println(line)
		}
	}
	fmt.Println(tui.RenderSummary(len(cat.Cues), failed))
	return <-errc
}
