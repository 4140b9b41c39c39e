// Package slides composes slide decks into HTML documents.
//
// A [Deck] is an ordered list of [Slide]s.
// Each slide renders to one or more <section> elements
// using the markup expected by the shower presentation engine.
package slides

import (
	"bytes"
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/dom"
	"go.abhg.dev/talkdeck/internal/highlight"
	"go.abhg.dev/talkdeck/internal/inline"
	"golang.org/x/net/html"
)

var (
	// DefaultStylesheets are used by decks that don't list any.
	DefaultStylesheets = []string{
		"shower/themes/ribbon/styles/screen.css",
		"custom.css",
	}

	// DefaultScript is used by decks that don't specify a script.
	DefaultScript = "shower/shower.min.js"
)

// Deck is a complete presentation.
type Deck struct {
	Title  string
	Author string

	// Stylesheets linked from the document head, in order.
	// Defaults to DefaultStylesheets if nil.
	Stylesheets []string

	// Script included at the end of the body.
	// Defaults to DefaultScript if empty.
	Script string

	Slides []Slide
}

// Slide is a top-level entry in a deck.
type Slide interface {
	// Render returns the <section> elements for this slide.
	Render(*Context) ([]*html.Node, error)
}

// Content is a building block placed inside a slide.
type Content interface {
	Render(*Context) (*html.Node, error)
}

// Context carries state for a single rendering pass over a deck.
type Context struct {
	highlighter *highlight.Highlighter

	// Whether any code was syntax highlighted.
	highlighted bool
}

// Inline renders text with inline markup.
func (c *Context) Inline(s string) []*html.Node {
	return inline.Render(s)
}

// Code renders src as the contents of a <pre> element,
// syntax highlighting it if lang names a known language.
func (c *Context) Code(lang, src string) (*html.Node, error) {
	if c.highlighter != nil && lang != "" {
		if lexer := highlight.LexerFor(lang, src); lexer != nil {
			nodes, err := c.highlighter.Highlight(lexer, src)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			c.highlighted = true
			return dom.Element("pre", c.highlighter.PreAttrs(),
				dom.Element("code", nil, nodes...)), nil
		}
	}

	return dom.Element("pre", nil, dom.Element("code", nil, dom.Text(src))), nil
}

// Renderer renders decks into HTML documents.
type Renderer struct {
	// Highlighter syntax highlights code content.
	// If nil, code is never syntax highlighted.
	Highlighter *highlight.Highlighter
}

// Document is a rendered deck.
type Document struct {
	// Node is the root of the document.
	Node *html.Node

	// Sections is the number of slide sections in the document.
	Sections int
}

// Build renders a deck into a document tree.
func (r *Renderer) Build(d *Deck) (*Document, error) {
	ctx := &Context{highlighter: r.Highlighter}

	body := dom.Element("body", dom.Attrs("class", "list"),
		dom.Element("header", dom.Attrs("class", "caption"),
			dom.Element("h1", nil, dom.Text(d.Title)),
			dom.Element("p", nil, dom.Text(d.Author)),
		),
	)

	var sections int
	for _, s := range d.Slides {
		nodes, err := s.Render(ctx)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		dom.Append(body, nodes...)
		sections += len(nodes)
	}

	script := d.Script
	if script == "" {
		script = DefaultScript
	}
	dom.Append(body,
		dom.Element("div", dom.Attrs("class", "progress"), dom.Element("div", nil)),
		dom.Element("script", dom.Attrs("src", script)),
	)

	head, err := r.head(ctx, d)
	if err != nil {
		return nil, err
	}

	root := dom.Element("html", dom.Attrs("lang", "en"), head, body)
	return &Document{
		Node:     dom.NewDocument(root),
		Sections: sections,
	}, nil
}

// head builds the <head> element.
// It must be called after the body is rendered
// so that highlighting styles are included only when needed.
func (r *Renderer) head(ctx *Context, d *Deck) (*html.Node, error) {
	head := dom.Element("head", nil,
		dom.Element("title", nil, dom.Text(d.Title)),
		dom.Element("meta", dom.Attrs("charset", "utf-8")),
		dom.Element("meta", dom.Attrs("name", "viewport", "content", "width=792, user-scalable=no")),
		dom.Element("meta", dom.Attrs("http-equiv", "x-ua-compatible", "content", "ie=edge")),
	)

	stylesheets := d.Stylesheets
	if stylesheets == nil {
		stylesheets = DefaultStylesheets
	}
	for _, href := range stylesheets {
		dom.Append(head, dom.Element("link", dom.Attrs("rel", "stylesheet", "href", href)))
	}

	if ctx.highlighted && r.Highlighter.UseClasses {
		var css bytes.Buffer
		if err := r.Highlighter.WriteCSS(&css); err != nil {
			return nil, errtrace.Wrap(err)
		}
		dom.Append(head, dom.Element("style", nil, dom.Text(css.String())))
	}

	return head, nil
}

// Render writes the HTML document for a deck to w.
func (r *Renderer) Render(w io.Writer, d *Deck) error {
	doc, err := r.Build(d)
	if err != nil {
		return err
	}
	return errtrace.Wrap(dom.Render(w, doc.Node))
}
