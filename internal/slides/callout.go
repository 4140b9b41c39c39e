package slides

import (
	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/callout"
	"go.abhg.dev/talkdeck/internal/dom"
	"golang.org/x/net/html"
)

// HighlightedClass is the class of spans highlighted in a callout step.
const HighlightedClass = "highlighted"

// CodeCallout is a code listing revealed over several steps,
// each highlighting different parts of the code.
// It renders one section per step.
//
// See package callout for the marker syntax.
type CodeCallout struct {
	Title string
	Code  *callout.Block
}

var _ Slide = (*CodeCallout)(nil)

// NewCodeCallout parses the callout markers in code.
func NewCodeCallout(title, code string) (*CodeCallout, error) {
	block, err := callout.Parse(code)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &CodeCallout{Title: title, Code: block}, nil
}

// Render renders one section per step of the callout.
func (s *CodeCallout) Render(ctx *Context) ([]*html.Node, error) {
	return RenderSteps(ctx, s.Code, s.Title)
}

// RenderSteps renders a titled section for each step of a callout block,
// in step order.
func RenderSteps(ctx *Context, block *callout.Block, title string) ([]*html.Node, error) {
	steps := block.Steps()
	sections := make([]*html.Node, 0, len(steps))
	for _, step := range steps {
		code, err := stepCode(block, step)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section(ctx, title, dom.Element("pre", nil, code)))
	}
	return sections, nil
}

// stepCode builds the <code> element for a single step.
func stepCode(block *callout.Block, step callout.Step) (*html.Node, error) {
	runs, err := block.Highlight(step)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	code := dom.Element("code", nil)
	for _, run := range runs {
		text := dom.Text(run.Text)
		if run.Highlighted {
			dom.Append(code, dom.Element("span", dom.Attrs("class", HighlightedClass), text))
		} else {
			dom.Append(code, text)
		}
	}
	dom.Normalize(code)
	return code, nil
}
