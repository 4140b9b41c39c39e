package deckfile

import (
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/slides"
)

var _slideKinds = []string{"cover", "big_point", "big_picture", "slide", "callout", "plot"}

type slideEntry struct {
	Cover      *coverEntry   `yaml:"cover"`
	BigPoint   *string       `yaml:"big_point"`
	BigPicture *string       `yaml:"big_picture"`
	Slide      *basicEntry   `yaml:"slide"`
	Callout    *calloutEntry `yaml:"callout"`
	Plot       *plotEntry    `yaml:"plot"`
}

type coverEntry struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Background string `yaml:"background"`
	ID         string `yaml:"id"`
}

type basicEntry struct {
	Title   string          `yaml:"title"`
	Content []*contentEntry `yaml:"content"`
}

type calloutEntry struct {
	Title string `yaml:"title"`
	Code  string `yaml:"code"`
}

type plotEntry struct {
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

func (e *slideEntry) build() (slides.Slide, error) {
	if e == nil {
		return nil, errtrace.Wrap(kindError(_slideKinds, 0))
	}

	var (
		slide slides.Slide
		count int
	)
	if e.Cover != nil {
		count++
		slide = &slides.Cover{
			Title:      e.Cover.Title,
			Subtitle:   e.Cover.Subtitle,
			Background: e.Cover.Background,
			ID:         e.Cover.ID,
		}
	}
	if e.BigPoint != nil {
		count++
		slide = &slides.BigPoint{Text: *e.BigPoint}
	}
	if e.BigPicture != nil {
		count++
		slide = &slides.BigPicture{Image: *e.BigPicture}
	}
	if e.Slide != nil {
		count++
		basic, err := e.Slide.build()
		if err != nil {
			return nil, err
		}
		slide = basic
	}
	if e.Callout != nil {
		count++
		callout, err := slides.NewCodeCallout(e.Callout.Title, e.Callout.Code)
		if err != nil {
			return nil, errtrace.Errorf("callout %q: %w", e.Callout.Title, err)
		}
		slide = callout
	}
	if e.Plot != nil {
		count++
		slide = &slides.Plot{Title: e.Plot.Title, Image: e.Plot.Image}
	}

	if count != 1 {
		return nil, errtrace.Wrap(kindError(_slideKinds, count))
	}
	return slide, nil
}

func (e *basicEntry) build() (*slides.Basic, error) {
	basic := &slides.Basic{
		Title:    e.Title,
		Contents: make([]slides.Content, 0, len(e.Content)),
	}
	for i, ce := range e.Content {
		c, err := ce.build()
		if err != nil {
			return nil, errtrace.Errorf("slide %q: content %d: %w", e.Title, i, err)
		}
		basic.Contents = append(basic.Contents, c)
	}
	return basic, nil
}

type kindCountError struct {
	kinds []string
	count int
}

func kindError(kinds []string, count int) error {
	return &kindCountError{kinds: kinds, count: count}
}

func (e *kindCountError) Error() string {
	var sb strings.Builder
	sb.WriteString("must specify exactly one of ")
	sb.WriteString(strings.Join(e.kinds, ", "))
	if e.count > 1 {
		sb.WriteString(", found multiple")
	}
	return sb.String()
}
