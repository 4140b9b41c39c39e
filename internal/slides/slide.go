package slides

import (
	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/dedent"
	"go.abhg.dev/talkdeck/internal/dom"
	"golang.org/x/net/html"
)

// section builds a regular slide section:
// a titled div holding the given children.
func section(ctx *Context, title string, children ...*html.Node) *html.Node {
	div := dom.Element("div", nil)
	if title != "" {
		dom.Append(div, dom.Element("h2", nil, ctx.Inline(title)...))
	}
	dom.Append(div, children...)
	return dom.Element("section", dom.Attrs("class", "slide"), div)
}

// Basic is a slide with a title and a list of contents.
type Basic struct {
	// Title of the slide with inline markup.
	// The heading is omitted if this is empty.
	Title    string
	Contents []Content
}

var _ Slide = (*Basic)(nil)

// Render renders the slide.
func (s *Basic) Render(ctx *Context) ([]*html.Node, error) {
	children := make([]*html.Node, 0, len(s.Contents))
	for _, c := range s.Contents {
		n, err := c.Render(ctx)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		children = append(children, n)
	}
	return []*html.Node{section(ctx, s.Title, children...)}, nil
}

// DefaultCoverID is the element ID used for covers that don't specify one.
const DefaultCoverID = "Cover"

// Cover is a title slide with a full-bleed background image.
type Cover struct {
	Title      string
	Subtitle   string
	Background string // image path

	// ID of the section.
	// Defaults to DefaultCoverID.
	ID string
}

var _ Slide = (*Cover)(nil)

// Render renders the slide.
func (s *Cover) Render(ctx *Context) ([]*html.Node, error) {
	id := s.ID
	if id == "" {
		id = DefaultCoverID
	}

	return []*html.Node{
		dom.Element("section", dom.Attrs("class", "slide cover", "id", id),
			dom.Element("div", nil,
				dom.Element("h2", nil, ctx.Inline(s.Title)...),
				dom.Element("p", nil, dom.Text(s.Subtitle)),
				dom.Element("img", dom.Attrs("src", s.Background, "alt", "")),
				dom.Element("style", nil, dom.Text(coverStyle(id))),
			),
		),
	}, nil
}

func coverStyle(id string) string {
	return `
#` + id + ` h2 {
	margin:30px 0 0;
	color:#FFF;
	text-align:center;
	font-size:70px;
	}
#` + id + ` p {
	margin:10px 0 0;
	text-align:center;
	color:#FFF;
	font-style:italic;
	font-size:20px;
	}
#` + id + ` p a {
	color:#FFF;
	}
`
}

// BigPoint is a slide holding a single, large statement.
type BigPoint struct {
	Text string
}

var _ Slide = (*BigPoint)(nil)

// Render renders the slide.
func (s *BigPoint) Render(*Context) ([]*html.Node, error) {
	return []*html.Node{
		dom.Element("section", dom.Attrs("class", "slide big"),
			dom.Element("div", nil,
				dom.Element("p", nil),
				dom.Element("p", nil, dom.Text(dedent.Clean(s.Text))),
			),
		),
	}, nil
}

// BigPicture is a slide filled by a single image.
type BigPicture struct {
	Image string
}

var _ Slide = (*BigPicture)(nil)

// Render renders the slide.
func (s *BigPicture) Render(*Context) ([]*html.Node, error) {
	return []*html.Node{
		dom.Element("section", dom.Attrs("class", "slide cover bigpicture"),
			dom.Element("div", nil,
				dom.Element("img", dom.Attrs("src", s.Image, "alt", "")),
			),
		),
	}, nil
}

// Plot is a titled slide showing a rendered plot.
type Plot struct {
	Title string
	Image string
}

var _ Slide = (*Plot)(nil)

// Render renders the slide.
func (s *Plot) Render(ctx *Context) ([]*html.Node, error) {
	return []*html.Node{
		section(ctx, s.Title,
			dom.Element("img", dom.Attrs("class", "gnuplot", "src", s.Image)),
		),
	}, nil
}
