// Package deckfile loads slide decks described in YAML.
//
// A deck file lists the slides of a presentation in order,
// along with where to write the rendered deck
// and any diagrams to draw alongside it.
// See the "deck" help topic for the format.
package deckfile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/errdefer"
	"go.abhg.dev/talkdeck/internal/slides"
	"go.abhg.dev/talkdeck/internal/svg"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the rendered deck's path
// if the deck file doesn't specify one.
const DefaultOutput = "index.html"

// File is a loaded deck file.
type File struct {
	Deck *slides.Deck

	// Output is the path of the rendered deck,
	// relative to the output directory.
	Output string

	Diagrams []*Diagram
}

// Diagram is an SVG picture written next to the deck.
type Diagram struct {
	// Path relative to the output directory.
	Path string

	Axis *svg.Axis
}

// Load reads the deck file at path.
func Load(path string) (_ *File, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	file, err := Decode(f)
	if err != nil {
		return nil, errtrace.Errorf("%v: %w", path, err)
	}
	return file, nil
}

// Decode reads a deck file from r.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw fileEntry
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errtrace.Wrap(errors.New("empty deck file"))
		}
		return nil, errtrace.Wrap(err)
	}

	return raw.build()
}

// Parse reads a deck file from memory.
func Parse(b []byte) (*File, error) {
	return Decode(bytes.NewReader(b))
}

type fileEntry struct {
	Title       string          `yaml:"title"`
	Author      string          `yaml:"author"`
	Output      string          `yaml:"output"`
	Stylesheets []string        `yaml:"stylesheets"`
	Script      string          `yaml:"script"`
	Slides      []*slideEntry   `yaml:"slides"`
	Diagrams    []*diagramEntry `yaml:"diagrams"`
}

func (e *fileEntry) build() (*File, error) {
	output := e.Output
	if output == "" {
		output = DefaultOutput
	}
	if err := checkLocal(output); err != nil {
		return nil, errtrace.Errorf("output: %w", err)
	}

	deck := &slides.Deck{
		Title:       e.Title,
		Author:      e.Author,
		Stylesheets: e.Stylesheets,
		Script:      e.Script,
		Slides:      make([]slides.Slide, 0, len(e.Slides)),
	}
	for i, se := range e.Slides {
		s, err := se.build()
		if err != nil {
			return nil, errtrace.Errorf("slide %d: %w", i, err)
		}
		deck.Slides = append(deck.Slides, s)
	}

	diagrams := make([]*Diagram, 0, len(e.Diagrams))
	for i, de := range e.Diagrams {
		d, err := de.build()
		if err != nil {
			return nil, errtrace.Errorf("diagram %d: %w", i, err)
		}
		diagrams = append(diagrams, d)
	}

	return &File{
		Deck:     deck,
		Output:   output,
		Diagrams: diagrams,
	}, nil
}

type diagramEntry struct {
	Path string     `yaml:"path"`
	Axis *axisEntry `yaml:"axis"`
}

type axisEntry struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lower  int     `yaml:"lower"`
	Upper  int     `yaml:"upper"`
	Tick   float64 `yaml:"tick"`
}

func (e *diagramEntry) build() (*Diagram, error) {
	if e == nil {
		return nil, errtrace.Wrap(errors.New("empty diagram"))
	}
	if err := checkLocal(e.Path); err != nil {
		return nil, errtrace.Errorf("path: %w", err)
	}
	if e.Axis == nil {
		return nil, errtrace.Errorf("%v: must specify axis", e.Path)
	}

	axis := &svg.Axis{
		Width:  e.Axis.Width,
		Height: e.Axis.Height,
		Lower:  e.Axis.Lower,
		Upper:  e.Axis.Upper,
		Tick:   e.Axis.Tick,
	}
	if err := axis.Validate(); err != nil {
		return nil, errtrace.Errorf("%v: %w", e.Path, err)
	}
	return &Diagram{Path: e.Path, Axis: axis}, nil
}

// checkLocal verifies that path stays inside the output directory.
func checkLocal(path string) error {
	if path == "" {
		return errtrace.Wrap(errors.New("must not be empty"))
	}
	if !filepath.IsLocal(path) {
		return errtrace.Errorf("%q must be a relative path inside the output directory", path)
	}
	return nil
}
