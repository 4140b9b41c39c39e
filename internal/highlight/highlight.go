package highlight

import (
	"io"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"go.abhg.dev/talkdeck/internal/dom"
	"golang.org/x/net/html"
)

// Highlighter turns source code into document nodes.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		if h.Style == nil {
			h.Style = PlainStyle
		}
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return h.formatter.WriteCSS(w, h.Style)
}

// PreAttrs returns the attributes for the <pre> element
// wrapping highlighted code.
func (h *Highlighter) PreAttrs() []html.Attribute {
	h.init()

	if h.UseClasses {
		return dom.Attrs("class", chroma.StandardTypes[chroma.PreWrapper])
	}
	return dom.Attrs("style", chromahtml.StyleEntryToCSS(h.Style.Get(chroma.PreWrapper)))
}

// Highlight lexes src and returns it as a list of nodes.
// Concatenating the text of the nodes yields src.
func (h *Highlighter) Highlight(lexer Lexer, src string) ([]*html.Node, error) {
	h.init()

	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}

	bg := h.Style.Get(chroma.Background)
	nodes := make([]*html.Node, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Value == "" {
			continue
		}

		var attrs []html.Attribute
		if h.UseClasses {
			if cls := tokenClass(tok.Type); cls != "" {
				attrs = dom.Attrs("class", cls)
			}
		} else {
			if css := chromahtml.StyleEntryToCSS(h.Style.Get(tok.Type).Sub(bg)); css != "" {
				attrs = dom.Attrs("style", css)
			}
		}

		text := dom.Text(tok.Value)
		if attrs == nil {
			nodes = append(nodes, text)
		} else {
			nodes = append(nodes, dom.Element("span", attrs, text))
		}
	}
	return nodes, nil
}

// tokenClass returns the Chroma class name for a token type,
// falling back to its sub-category and category.
func tokenClass(t chroma.TokenType) string {
	for _, tt := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if cls, ok := chroma.StandardTypes[tt]; ok {
			return cls
		}
	}
	return ""
}
