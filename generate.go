package main

import (
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"go.abhg.dev/talkdeck/internal/deckfile"
	"go.abhg.dev/talkdeck/internal/dom"
	"go.abhg.dev/talkdeck/internal/errdefer"
	"go.abhg.dev/talkdeck/internal/relative"
	"go.abhg.dev/talkdeck/internal/slides"
)

// Renderer turns a deck into an HTML document.
type Renderer interface {
	Build(*slides.Deck) (*slides.Document, error)
}

var _ Renderer = (*slides.Renderer)(nil)

// Generator renders deck files into the output directory.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	Renderer Renderer
	OutDir   string

	// Stylesheets overrides the stylesheets of every deck
	// if non-empty.
	// Paths are relative to OutDir.
	Stylesheets []string
}

// Generate loads the deck file at path
// and writes the rendered deck and its diagrams.
//
// Nothing is written if the deck file is invalid.
func (g *Generator) Generate(path string) error {
	g.Log.Debug("loading deck", "path", path)
	file, err := deckfile.Load(path)
	if err != nil {
		return err
	}

	deck := file.Deck
	if len(g.Stylesheets) > 0 {
		from := filepath.ToSlash(file.Output)
		deck.Stylesheets = make([]string, len(g.Stylesheets))
		for i, href := range g.Stylesheets {
			deck.Stylesheets[i] = relative.Href(from, href)
		}
	}

	g.Log.Info("rendering deck", "path", path, "slides", len(deck.Slides))
	doc, err := g.Renderer.Build(deck)
	if err != nil {
		return errtrace.Errorf("%v: %w", path, err)
	}

	out := filepath.Join(g.OutDir, file.Output)
	if err := writeFile(out, func(w io.Writer) error {
		return dom.Render(w, doc.Node)
	}); err != nil {
		return err
	}
	g.Log.Info("wrote", "path", out, "sections", doc.Sections)

	for _, d := range file.Diagrams {
		pic, err := d.Axis.Picture()
		if err != nil {
			return errtrace.Errorf("%v: %w", d.Path, err)
		}

		out := filepath.Join(g.OutDir, d.Path)
		if err := writeFile(out, pic.Render); err != nil {
			return err
		}
		g.Log.Info("wrote", "path", out)
	}

	return nil
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o1755); err != nil {
		return errtrace.Wrap(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(render(f))
}
