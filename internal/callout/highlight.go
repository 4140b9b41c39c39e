package callout

import (
	"fmt"

	"braces.dev/errtrace"
)

// Run is a piece of rendered callout text.
type Run struct {
	Text        string
	Highlighted bool
}

// Highlight renders the block for the given step.
//
// The returned runs reproduce the text of the block without markers,
// in order, with exactly the spans labeled for this step highlighted.
// Adjacent plain runs are merged.
// Highlighted runs are never merged, even when adjacent.
//
// Highlight fails with [ErrUnknownLabel] if the step is for a label
// this block doesn't use.
func (b *Block) Highlight(step Step) ([]Run, error) {
	if !step.Baseline && !b.HasLabel(step.Label) {
		return nil, errtrace.Wrap(fmt.Errorf("%w: %v", ErrUnknownLabel, step))
	}

	var rb runBuilder
	for _, span := range b.spans {
		switch s := span.(type) {
		case *TextSpan:
			rb.Plain(s.Text)

		case *MarkSpan:
			if step.matches(s.Label) {
				rb.Highlight(s.Text)
			} else {
				rb.Plain(s.Text)
			}

		case *SplitSpan:
			switch {
			case step.matches(s.FragmentLabel):
				rb.Plain(s.Prefix)
				rb.Highlight(s.Fragment)
				rb.Plain(s.Suffix)
			case step.matches(s.OuterLabel):
				rb.Highlight(s.Text())
			default:
				rb.Plain(s.Text())
			}

		default:
			panic(fmt.Sprintf("unrecognized span type %T", s))
		}
	}
	return rb.runs, nil
}

type runBuilder struct{ runs []Run }

func (rb *runBuilder) Plain(s string) {
	if s == "" {
		return
	}
	if n := len(rb.runs); n > 0 && !rb.runs[n-1].Highlighted {
		rb.runs[n-1].Text += s
		return
	}
	rb.runs = append(rb.runs, Run{Text: s})
}

func (rb *runBuilder) Highlight(s string) {
	rb.runs = append(rb.runs, Run{Text: s, Highlighted: true})
}
