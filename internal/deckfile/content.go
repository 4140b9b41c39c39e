package deckfile

import (
	"errors"

	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/slides"
)

var _contentKinds = []string{"points", "para", "quote", "code", "picture"}

type contentEntry struct {
	Points  *[]string   `yaml:"points"`
	Para    *string     `yaml:"para"`
	Quote   *quoteEntry `yaml:"quote"`
	Code    *string     `yaml:"code"`
	Picture *string     `yaml:"picture"`

	// Modifiers.
	Reveal bool   `yaml:"reveal"`
	Center bool   `yaml:"center"`
	Lang   string `yaml:"lang"`
}

type quoteEntry struct {
	Text string `yaml:"text"`
	By   string `yaml:"by"`
}

func (e *contentEntry) build() (slides.Content, error) {
	if e == nil {
		return nil, errtrace.Wrap(kindError(_contentKinds, 0))
	}

	var (
		content slides.Content
		count   int
	)
	if e.Points != nil {
		count++
		content = &slides.Points{Items: *e.Points, Reveal: e.Reveal}
	}
	if e.Para != nil {
		count++
		content = &slides.Para{Text: *e.Para, Reveal: e.Reveal, Center: e.Center}
	}
	if e.Quote != nil {
		count++
		content = &slides.Quote{Text: e.Quote.Text, Writer: e.Quote.By}
	}
	if e.Code != nil {
		count++
		content = &slides.Code{Code: *e.Code, Lang: e.Lang}
	}
	if e.Picture != nil {
		count++
		content = &slides.Picture{Image: *e.Picture}
	}
	if count != 1 {
		return nil, errtrace.Wrap(kindError(_contentKinds, count))
	}

	switch {
	case e.Reveal && e.Points == nil && e.Para == nil:
		return nil, errtrace.Wrap(errors.New("reveal is only valid for points and para"))
	case e.Center && e.Para == nil:
		return nil, errtrace.Wrap(errors.New("center is only valid for para"))
	case e.Lang != "" && e.Code == nil:
		return nil, errtrace.Wrap(errors.New("lang is only valid for code"))
	}

	return content, nil
}
