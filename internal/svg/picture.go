// Package svg builds standalone SVG pictures.
//
// Pictures are trees of [golang.org/x/net/html] nodes
// in the SVG namespace, serialized as SVG 1.1 documents.
package svg

import (
	"io"
	"strconv"

	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/dom"
	"golang.org/x/net/html"
)

const (
	_namespace      = "http://www.w3.org/2000/svg"
	_xlinkNamespace = "http://www.w3.org/1999/xlink"

	_doctypePublic = "-//W3C//DTD SVG 1.1//EN"
	_doctypeSystem = "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"

	_xmlDecl = `<?xml version="1.0" ?>`
)

// Point is a position in user units.
type Point struct{ X, Y float64 }

// Picture is an SVG document under construction.
type Picture struct {
	root *html.Node
}

// NewPicture starts a picture with the given displayed size
// (e.g. "1280px") and a view box of viewW by viewH user units.
func NewPicture(width, height string, viewW, viewH float64) *Picture {
	return &Picture{
		root: element("svg", dom.Attrs(
			"xmlns", _namespace,
			"xmlns:xlink", _xlinkNamespace,
			"version", "1.1",
			"width", width,
			"height", height,
			"viewBox", "0 0 "+Num(viewW)+" "+Num(viewH),
		)),
	}
}

// Root returns the <svg> element.
func (p *Picture) Root() *html.Node { return p.root }

// Append adds elements to the end of the picture.
func (p *Picture) Append(nodes ...*html.Node) {
	dom.Append(p.root, nodes...)
}

// Render writes the picture to w as a standalone SVG document.
func (p *Picture) Render(w io.Writer) error {
	doc := &html.Node{Type: html.DocumentNode}
	dom.Append(doc,
		&html.Node{Type: html.RawNode, Data: _xmlDecl},
		dom.Text("\n"),
		&html.Node{
			Type: html.DoctypeNode,
			Data: "svg",
			Attr: dom.Attrs("public", _doctypePublic, "system", _doctypeSystem),
		},
		dom.Text("\n"),
		p.root,
	)
	defer doc.RemoveChild(p.root)

	return errtrace.Wrap(dom.Render(w, doc))
}

// Num formats a number with the shortest decimal representation
// that round-trips.
func Num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Line builds a <line> from one point to another.
// attrs are alternating keys and values added after the coordinates.
func Line(from, to Point, attrs ...string) *html.Node {
	return element("line", append(dom.Attrs(
		"x1", Num(from.X),
		"y1", Num(from.Y),
		"x2", Num(to.X),
		"y2", Num(to.Y),
	), dom.Attrs(attrs...)...))
}

// Rect builds a <rect> with its top-left corner at the given point.
func Rect(at Point, width, height float64, attrs ...string) *html.Node {
	return element("rect", append(dom.Attrs(
		"x", Num(at.X),
		"y", Num(at.Y),
		"width", Num(width),
		"height", Num(height),
	), dom.Attrs(attrs...)...))
}

// Group builds an empty <g> element.
func Group(attrs ...string) *html.Node {
	return element("g", dom.Attrs(attrs...))
}

// Path builds a <path> with the given path data.
func Path(d string, attrs ...string) *html.Node {
	return element("path", append(dom.Attrs("d", d), dom.Attrs(attrs...)...))
}

// Text builds a <text> element.
// The element is left empty if content is empty.
func Text(content string, attrs ...string) *html.Node {
	t := element("text", dom.Attrs(attrs...))
	if content != "" {
		dom.Append(t, dom.Text(content))
	}
	return t
}

// TextPath builds a <textPath> element holding content.
func TextPath(content string, attrs ...string) *html.Node {
	return element("textPath", dom.Attrs(attrs...), dom.Text(content))
}

// Defs builds a <defs> element.
func Defs(children ...*html.Node) *html.Node {
	return element("defs", nil, children...)
}

func element(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := dom.Element(tag, attrs, children...)
	n.Namespace = "svg"
	return n
}
