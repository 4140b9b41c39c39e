package slides

import (
	"bytes"
	"errors"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/talkdeck/internal/callout"
	"go.abhg.dev/talkdeck/internal/dom"
	"go.abhg.dev/talkdeck/internal/highlight"
	"golang.org/x/net/html"
)

// renderDeck renders the deck and parses it back.
func renderDeck(t *testing.T, r *Renderer, d *Deck) *html.Node {
	t.Helper()

	var buff bytes.Buffer
	require.NoError(t, r.Render(&buff, d))

	doc, err := html.Parse(bytes.NewReader(buff.Bytes()))
	require.NoError(t, err, "invalid HTML:\n%v", buff.String())
	return doc
}

func queryAll(doc *html.Node, sel string) []*html.Node {
	return cascadia.MustCompile(sel).MatchAll(doc)
}

func texts(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = dom.TextContent(n)
	}
	return out
}

func attr(n *html.Node, key string) string {
	v, _ := dom.Attr(n, key)
	return v
}

func TestRenderer_Render_layout(t *testing.T) {
	t.Parallel()

	doc := renderDeck(t, new(Renderer), &Deck{
		Title:  "Concurrency First in Rust",
		Author: "Jim Blandy",
		Slides: []Slide{
			&Basic{Title: "Why Rust?"},
		},
	})

	assert.Equal(t, []string{"Concurrency First in Rust"}, texts(queryAll(doc, "head > title")))
	assert.Len(t, queryAll(doc, `head > meta[charset="utf-8"]`), 1)
	assert.Len(t, queryAll(doc, `head > meta[name="viewport"]`), 1)
	assert.Len(t, queryAll(doc, `head > meta[http-equiv="x-ua-compatible"]`), 1)
	assert.Empty(t, queryAll(doc, "head > style"))

	var hrefs []string
	for _, link := range queryAll(doc, `head > link[rel="stylesheet"]`) {
		hrefs = append(hrefs, attr(link, "href"))
	}
	assert.Equal(t, DefaultStylesheets, hrefs)

	assert.Equal(t, []string{"Concurrency First in Rust"}, texts(queryAll(doc, "body.list > header.caption > h1")))
	assert.Equal(t, []string{"Jim Blandy"}, texts(queryAll(doc, "body.list > header.caption > p")))
	assert.Equal(t, []string{"Why Rust?"}, texts(queryAll(doc, "body > section.slide > div > h2")))
	assert.Len(t, queryAll(doc, "body > div.progress > div"), 1)

	scripts := queryAll(doc, "body > script")
	require.Len(t, scripts, 1)
	assert.Equal(t, DefaultScript, attr(scripts[0], "src"))
}

func TestRenderer_Render_customAssets(t *testing.T) {
	t.Parallel()

	doc := renderDeck(t, new(Renderer), &Deck{
		Title:       "Talk",
		Stylesheets: []string{"a.css"},
		Script:      "reveal.js",
	})

	links := queryAll(doc, "head > link")
	require.Len(t, links, 1)
	assert.Equal(t, "a.css", attr(links[0], "href"))

	scripts := queryAll(doc, "body > script")
	require.Len(t, scripts, 1)
	assert.Equal(t, "reveal.js", attr(scripts[0], "src"))
}

func TestRenderer_Build_sections(t *testing.T) {
	t.Parallel()

	callout, err := NewCodeCallout("Option", "`None$Some(v)$4rest`5")
	require.NoError(t, err)

	got, err := new(Renderer).Build(&Deck{
		Slides: []Slide{
			&BigPoint{Text: "one"},
			callout,
			&BigPicture{Image: "x.png"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Sections)
}

func TestCodeCallout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		code string

		// Highlighted text in each step.
		want [][]string
	}{
		{
			desc: "simple",
			code: "fn f(n: `u64`1)",
			want: [][]string{nil, {"u64"}},
		},
		{
			desc: "split",
			code: "`None$Some(v)$4rest`5",
			want: [][]string{nil, {"Some(v)"}, {"NoneSome(v)rest"}},
		},
		{
			desc: "no markers",
			code: "fn main() {}",
			want: [][]string{nil},
		},
		{
			desc: "shared label",
			code: "`a`2 + `b`2 + `c`1",
			want: [][]string{nil, {"c"}, {"a", "b"}},
		},
		{
			desc: "label zero",
			code: "`a`0 + `b`1",
			want: [][]string{{"a"}, {"b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			slide, err := NewCodeCallout("A `code` slide", tt.code)
			require.NoError(t, err)

			doc := renderDeck(t, new(Renderer), &Deck{Slides: []Slide{slide}})
			sections := queryAll(doc, "body > section.slide")
			require.Len(t, sections, len(tt.want))

			for i, section := range sections {
				assert.Equal(t, []string{"A code slide"}, texts(queryAll(section, "div > h2")))
				assert.Len(t, queryAll(section, "div > h2 > code"), 1)

				code := queryAll(section, "div > pre > code")
				require.Len(t, code, 1)
				assert.Equal(t, slide.Code.Plain(), dom.TextContent(code[0]),
					"step %d must contain all the code", i)

				got := texts(queryAll(code[0], "span.highlighted"))
				if len(tt.want[i]) == 0 {
					assert.Empty(t, got, "step %d", i)
				} else {
					assert.Equal(t, tt.want[i], got, "step %d", i)
				}
			}
		})
	}
}

func TestRenderSteps_normalized(t *testing.T) {
	t.Parallel()

	block, err := callout.Parse("`None$Some(v)$4rest`5 and more")
	require.NoError(t, err)

	sections, err := RenderSteps(new(Context), block, "")
	require.NoError(t, err)
	require.Len(t, sections, 3)

	// Baseline: the whole block is a single text node.
	code := queryAll(sections[0], "code")[0]
	require.NotNil(t, code.FirstChild)
	assert.Equal(t, html.TextNode, code.FirstChild.Type)
	assert.Nil(t, code.FirstChild.NextSibling)
	assert.Equal(t, "NoneSome(v)rest and more\n", code.FirstChild.Data)

	// No title, no heading.
	assert.Empty(t, queryAll(sections[0], "h2"))
}

func TestNewCodeCallout_malformed(t *testing.T) {
	t.Parallel()

	_, err := NewCodeCallout("Broken", "let x = `oops;")
	assert.ErrorIs(t, err, callout.ErrMalformed)
}

func TestContents(t *testing.T) {
	t.Parallel()

	doc := renderDeck(t, new(Renderer), &Deck{
		Slides: []Slide{
			&Basic{
				Title: "Contents",
				Contents: []Content{
					&Points{Items: []string{"*safety*", "performance", "concurrency"}, Reveal: true},
					&Points{Items: []string{"a", "b"}},
					&Para{Text: "Rust adopts this principle as well.", Reveal: true},
					&Para{Text: "centered", Center: true},
					&Quote{Text: "\n  What you don't use, you don't pay for.\n", Writer: "Bjarne Stroustrup"},
					&Code{Code: "\n    fn main() {}\n"},
					&Picture{Image: "images/p.png"},
				},
			},
		},
	})

	lists := queryAll(doc, "section.slide > div > ul")
	require.Len(t, lists, 2)

	items := queryAll(lists[0], "li")
	require.Len(t, items, 3)
	assert.Equal(t, []string{"", "next", "next"},
		[]string{attr(items[0], "class"), attr(items[1], "class"), attr(items[2], "class")})
	assert.Equal(t, []string{"safety"}, texts(queryAll(items[0], "b")))
	assert.Empty(t, queryAll(lists[1], "li.next"))

	assert.Equal(t, []string{"Rust adopts this principle as well."}, texts(queryAll(doc, "div > p.next")))
	assert.Equal(t, []string{"centered"}, texts(queryAll(doc, "div > center")))

	assert.Equal(t, []string{"What you don't use, you don't pay for.\n"},
		texts(queryAll(doc, "figure > blockquote > p")))
	assert.Equal(t, []string{"Bjarne Stroustrup"}, texts(queryAll(doc, "figure > figcaption")))

	assert.Equal(t, []string{"fn main() {}\n"}, texts(queryAll(doc, "div > pre > code")))

	imgs := queryAll(doc, "section.slide > div > img")
	require.Len(t, imgs, 1)
	assert.Equal(t, "images/p.png", attr(imgs[0], "src"))
}

func TestCode_highlighted(t *testing.T) {
	t.Parallel()

	r := &Renderer{
		Highlighter: &highlight.Highlighter{
			Style:      highlight.PlainStyle,
			UseClasses: true,
		},
	}
	doc := renderDeck(t, r, &Deck{
		Slides: []Slide{
			&Basic{Contents: []Content{
				&Code{Code: "package main\n\nfunc main() {}\n", Lang: "go"},
				&Code{Code: "plain text", Lang: "not-a-language"},
			}},
		},
	})

	styles := queryAll(doc, "head > style")
	require.Len(t, styles, 1)
	assert.Contains(t, dom.TextContent(styles[0]), ".chroma")

	pres := queryAll(doc, "div > pre")
	require.Len(t, pres, 2)
	assert.Equal(t, "chroma", attr(pres[0], "class"))
	assert.Equal(t, "package main\n\nfunc main() {}\n", dom.TextContent(pres[0]))
	assert.NotEmpty(t, queryAll(pres[0], "code > span.kn"))

	assert.Equal(t, "", attr(pres[1], "class"))
	assert.Equal(t, "plain text\n", dom.TextContent(pres[1]))
}

func TestCode_inlineStyles(t *testing.T) {
	t.Parallel()

	r := &Renderer{
		Highlighter: &highlight.Highlighter{Style: highlight.PlainStyle},
	}
	doc := renderDeck(t, r, &Deck{
		Slides: []Slide{
			&Basic{Contents: []Content{
				&Code{Code: "// hi\n", Lang: "go"},
			}},
		},
	})

	assert.Empty(t, queryAll(doc, "head > style"))
	pres := queryAll(doc, "div > pre")
	require.Len(t, pres, 1)
	assert.NotEmpty(t, attr(pres[0], "style"))
}

func TestSlides(t *testing.T) {
	t.Parallel()

	doc := renderDeck(t, new(Renderer), &Deck{
		Slides: []Slide{
			&Cover{
				Title:      "Concurrency First in Rust",
				Subtitle:   "Jim Blandy",
				Background: "images/cover.png",
			},
			&Cover{Title: "Second", ID: "Other"},
			&BigPoint{Text: "\n\n    Rust makes concurrent designs easier.\n\n    "},
			&BigPicture{Image: "images/big.png"},
			&Plot{Title: "Throughput", Image: "plots/t.svg"},
		},
	})

	covers := queryAll(doc, "section.slide.cover[id]")
	require.Len(t, covers, 2)
	assert.Equal(t, DefaultCoverID, attr(covers[0], "id"))
	assert.Equal(t, []string{"Concurrency First in Rust"}, texts(queryAll(covers[0], "div > h2")))
	assert.Equal(t, []string{"Jim Blandy"}, texts(queryAll(covers[0], "div > p")))
	assert.Contains(t, dom.TextContent(queryAll(covers[0], "div > style")[0]), "#Cover h2")
	assert.Equal(t, "Other", attr(covers[1], "id"))
	assert.Contains(t, dom.TextContent(queryAll(covers[1], "div > style")[0]), "#Other h2")

	big := queryAll(doc, "section.slide.big > div > p")
	require.Len(t, big, 2)
	assert.Equal(t, []string{"", "Rust makes concurrent designs easier.\n"}, texts(big))

	bigPics := queryAll(doc, "section.slide.cover.bigpicture > div > img")
	require.Len(t, bigPics, 1)
	assert.Equal(t, "images/big.png", attr(bigPics[0], "src"))

	plots := queryAll(doc, "section.slide > div > img.gnuplot")
	require.Len(t, plots, 1)
	assert.Equal(t, "plots/t.svg", attr(plots[0], "src"))
}

type failingContent struct{ err error }

func (c *failingContent) Render(*Context) (*html.Node, error) {
	return nil, c.err
}

func TestRenderer_Render_contentError(t *testing.T) {
	t.Parallel()

	giveErr := errors.New("great sadness")
	var buff bytes.Buffer
	err := new(Renderer).Render(&buff, &Deck{
		Slides: []Slide{
			&Basic{Contents: []Content{&failingContent{err: giveErr}}},
		},
	})
	assert.ErrorIs(t, err, giveErr)
	assert.Empty(t, buff.String())
}
