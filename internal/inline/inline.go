// Package inline renders the small amount of inline markup
// allowed in slide titles and paragraphs:
//
//	*emphasis*   renders as <b>
//	`code`       renders as <code>
//
// Everything else is plain text.
// There are no links, headings, lists, or HTML passthrough.
package inline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/talkdeck/internal/dom"
	"golang.org/x/net/html"
)

// _parser recognizes only paragraphs, code spans, and emphasis.
var _parser = parser.NewParser(
	parser.WithBlockParsers(
		util.Prioritized(parser.NewParagraphParser(), 1000),
	),
	parser.WithInlineParsers(
		util.Prioritized(parser.NewCodeSpanParser(), 100),
		util.Prioritized(parser.NewEmphasisParser(), 500),
	),
)

// Render converts s into a list of nodes.
// Separate paragraphs in s are joined by a blank line.
func Render(s string) []*html.Node {
	src := []byte(s)
	doc := _parser.Parse(text.NewReader(src))

	r := renderer{src: src}
	for para := doc.FirstChild(); para != nil; para = para.NextSibling() {
		if para.PreviousSibling() != nil {
			r.text("\n\n")
		}
		r.children(para)
	}
	return r.nodes
}

type renderer struct {
	src   []byte
	nodes []*html.Node
}

// text appends s, merging it into a preceding text node.
func (r *renderer) text(s string) {
	if n := len(r.nodes); n > 0 && r.nodes[n-1].Type == html.TextNode {
		r.nodes[n-1].Data += s
		return
	}
	r.nodes = append(r.nodes, dom.Text(s))
}

func (r *renderer) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.node(c)
	}
}

func (r *renderer) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Text, *ast.String:
		r.text(plainText(r.src, n))
	case *ast.Emphasis:
		r.nodes = append(r.nodes, dom.Element("b", nil, dom.Text(childText(r.src, n))))
	case *ast.CodeSpan:
		r.nodes = append(r.nodes, dom.Element("code", nil, dom.Text(childText(r.src, n))))
	default:
		r.text(childText(r.src, n))
	}
}

// childText flattens the text inside n.
// Nested emphasis is dropped in favor of its text.
func childText(src []byte, n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.Text, *ast.String:
			sb.WriteString(plainText(src, c))
		default:
			sb.WriteString(childText(src, c))
		}
	}
	return sb.String()
}

func plainText(src []byte, n ast.Node) string {
	switch n := n.(type) {
	case *ast.String:
		return string(n.Value)
	case *ast.Text:
		s := string(n.Segment.Value(src))
		if n.SoftLineBreak() || n.HardLineBreak() {
			s += "\n"
		}
		return s
	default:
		return ""
	}
}
