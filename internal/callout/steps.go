package callout

import (
	"fmt"
	"slices"
)

// collectLabels returns the distinct labels used by spans,
// sorted by character value.
func collectLabels(spans []Span) []Label {
	seen := make(map[Label]struct{})
	for _, span := range spans {
		switch s := span.(type) {
		case *TextSpan:
			// no labels
		case *MarkSpan:
			seen[s.Label] = struct{}{}
		case *SplitSpan:
			seen[s.FragmentLabel] = struct{}{}
			seen[s.OuterLabel] = struct{}{}
		default:
			panic(fmt.Sprintf("unrecognized span type %T", s))
		}
	}

	labels := make([]Label, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	// Map iteration order is random.
	slices.Sort(labels)
	return labels
}

// Labels returns the distinct labels used in this block
// sorted by character value.
// The returned slice must not be modified.
func (b *Block) Labels() []Label {
	return b.labels
}

// HasLabel reports whether any marker in the block uses l.
func (b *Block) HasLabel(l Label) bool {
	_, found := slices.BinarySearch(b.labels, l)
	return found
}

// Steps returns the steps this block renders as, in order.
//
// There's one step per label.
// Unless the block uses [BaselineLabel],
// a baseline step with nothing highlighted comes first.
// A block without markers therefore has exactly one step.
func (b *Block) Steps() []Step {
	steps := make([]Step, 0, len(b.labels)+1)
	if !b.HasLabel(BaselineLabel) {
		steps = append(steps, Step{Baseline: true})
	}
	for _, l := range b.labels {
		steps = append(steps, Step{Label: l})
	}
	return steps
}
