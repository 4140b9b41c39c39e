package slides

import (
	"go.abhg.dev/talkdeck/internal/dedent"
	"go.abhg.dev/talkdeck/internal/dom"
	"golang.org/x/net/html"
)

// NextClass marks elements revealed one at a time.
const NextClass = "next"

// Points is a bulleted list.
type Points struct {
	// Items with inline markup.
	Items []string

	// Reveal shows items one at a time.
	// The first item is always visible.
	Reveal bool
}

var _ Content = (*Points)(nil)

// Render renders the list.
func (c *Points) Render(ctx *Context) (*html.Node, error) {
	ul := dom.Element("ul", nil)
	for i, item := range c.Items {
		li := dom.Element("li", nil, ctx.Inline(item)...)
		if c.Reveal && i > 0 {
			dom.SetAttr(li, "class", NextClass)
		}
		dom.Append(ul, li)
	}
	return ul, nil
}

// Para is a paragraph of text.
type Para struct {
	// Text with inline markup.
	Text string

	// Reveal hides the paragraph until the next step.
	Reveal bool

	// Center centers the paragraph on the slide.
	Center bool
}

var _ Content = (*Para)(nil)

// Render renders the paragraph.
func (c *Para) Render(ctx *Context) (*html.Node, error) {
	tag := "p"
	if c.Center {
		tag = "center"
	}
	p := dom.Element(tag, nil, ctx.Inline(dedent.Clean(c.Text))...)
	if c.Reveal {
		dom.SetAttr(p, "class", NextClass)
	}
	return p, nil
}

// Quote is a quotation with attribution.
type Quote struct {
	Text   string
	Writer string
}

var _ Content = (*Quote)(nil)

// Render renders the quotation.
func (c *Quote) Render(*Context) (*html.Node, error) {
	return dom.Element("figure", nil,
		dom.Element("blockquote", nil,
			dom.Element("p", nil, dom.Text(dedent.Clean(c.Text))),
		),
		dom.Element("figcaption", nil, dom.Text(c.Writer)),
	), nil
}

// Code is a plain code listing.
type Code struct {
	Code string

	// Lang is the language used for syntax highlighting.
	// Use "auto" to detect it, or leave empty for plain text.
	Lang string
}

var _ Content = (*Code)(nil)

// Render renders the listing.
func (c *Code) Render(ctx *Context) (*html.Node, error) {
	return ctx.Code(c.Lang, dedent.Clean(c.Code))
}

// Picture is an inline image.
type Picture struct {
	Image string
}

var _ Content = (*Picture)(nil)

// Render renders the image.
func (c *Picture) Render(*Context) (*html.Node, error) {
	return dom.Element("img", dom.Attrs("src", c.Image, "alt", "")), nil
}
