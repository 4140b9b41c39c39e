// Package dom builds and serializes document trees.
//
// Trees are made of [golang.org/x/net/html] nodes
// so they can be rendered with [html.Render]
// and inspected with any tool that understands that package.
package dom

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attrs builds an attribute list from alternating keys and values.
// Attributes keep the order they are listed in.
//
// Attrs panics if given an odd number of arguments.
func Attrs(kv ...string) []html.Attribute {
	if len(kv)%2 != 0 {
		panic("dom.Attrs: odd number of arguments")
	}
	if len(kv) == 0 {
		return nil
	}
	attrs := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		attrs = append(attrs, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

// Element builds an element with the given attributes and children.
// Nil children are skipped.
func Element(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     append([]html.Attribute(nil), attrs...),
	}
	Append(n, children...)
	return n
}

// Text builds a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append adds children to the end of parent.
// Nil children are skipped.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
}

// SetAttr sets an attribute on n, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Attr returns the value of an attribute of n
// and whether it was present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Normalize merges adjacent text nodes in the subtree rooted at n
// and drops empty ones.
func Normalize(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		switch {
		case c.Type == html.TextNode && c.Data == "":
			n.RemoveChild(c)
		case c.Type == html.TextNode:
			for next != nil && next.Type == html.TextNode {
				c.Data += next.Data
				after := next.NextSibling
				n.RemoveChild(next)
				next = after
			}
		default:
			Normalize(c)
		}
		c = next
	}
}

// TextContent returns the concatenated text of all text nodes
// in the subtree rooted at n.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

// NewDocument builds an HTML document with the given root element
// and an "html" doctype.
func NewDocument(root *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc
}

// Render writes n to w followed by a newline.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return errtrace.Wrap(err)
	}
	_, err := io.WriteString(w, "\n")
	return errtrace.Wrap(err)
}
