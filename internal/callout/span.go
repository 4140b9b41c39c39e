package callout

import (
	"fmt"
	"strconv"
)

// Label identifies a single step of a callout block.
type Label rune

// String returns the label character.
func (l Label) String() string {
	return string(rune(l))
}

// BaselineLabel is the label that, when used in a block,
// suppresses the extra unhighlighted baseline step.
const BaselineLabel Label = '0'

type (
	// Span is a part of a callout block.
	Span interface{ span() }

	// TextSpan is unmarked text.
	TextSpan struct {
		Text string
	}

	// MarkSpan is a span highlighted as a whole in the step for Label.
	MarkSpan struct {
		Text  string
		Label Label
	}

	// SplitSpan is a span with an independently highlighted fragment.
	//
	// In the step for FragmentLabel, only Fragment is highlighted.
	// In the step for OuterLabel, Prefix+Fragment+Suffix is highlighted
	// as a single unit.
	SplitSpan struct {
		Prefix        string
		Fragment      string
		FragmentLabel Label
		Suffix        string
		OuterLabel    Label
	}
)

var (
	_ Span = (*TextSpan)(nil)
	_ Span = (*MarkSpan)(nil)
	_ Span = (*SplitSpan)(nil)
)

func (*TextSpan) span()  {}
func (*MarkSpan) span()  {}
func (*SplitSpan) span() {}

// Text returns the text of the full span without any markers.
func (s *SplitSpan) Text() string {
	return s.Prefix + s.Fragment + s.Suffix
}

// Step is one rendered variant of a callout block.
type Step struct {
	// Label selects the spans highlighted in this step.
	// It's meaningless if Baseline is set.
	Label Label

	// Baseline marks the synthetic step with nothing highlighted.
	Baseline bool
}

// String returns a human-readable name for this step.
func (s Step) String() string {
	if s.Baseline {
		return "baseline"
	}
	return strconv.QuoteRune(rune(s.Label))
}

// matches reports whether spans labeled l are highlighted in this step.
func (s Step) matches(l Label) bool {
	return !s.Baseline && s.Label == l
}

func spanText(span Span) string {
	switch s := span.(type) {
	case *TextSpan:
		return s.Text
	case *MarkSpan:
		return s.Text
	case *SplitSpan:
		return s.Text()
	default:
		panic(fmt.Sprintf("unrecognized span type %T", s))
	}
}
