package callout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"go.abhg.dev/talkdeck/internal/dedent"
)

const (
	_markerDelim   = '`'
	_fragmentDelim = '$'
)

// _markerPattern matches both marker forms. Submatches:
//
//	simple: 1=text 2=label
//	split:  3=prefix 4=fragment 5=fragment label 6=suffix 7=outer label
var _markerPattern = regexp.MustCompile(
	"`([^`$]*)`(.)" +
		"|`([^`$]*)\\$([^`$]+)\\$(.)([^`$]*)`(.)",
)

// Block is a parsed callout block.
// It is immutable once built.
type Block struct {
	text   string
	spans  []Span
	labels []Label
}

// Parse cleans up the indentation of raw (see [dedent.Clean])
// and parses the callout markers in it.
//
// It returns an error matching [ErrMalformed] if a marker is malformed.
func Parse(raw string) (*Block, error) {
	text := dedent.Clean(raw)
	spans, err := Scan(text)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Block{
		text:   text,
		spans:  spans,
		labels: collectLabels(spans),
	}, nil
}

// Text returns the cleaned up source of the block, markers included.
func (b *Block) Text() string { return b.text }

// Spans returns the parsed spans of the block in source order.
// The returned slice must not be modified.
func (b *Block) Spans() []Span { return b.spans }

// Plain returns the text of the block with all markers removed.
func (b *Block) Plain() string {
	var sb strings.Builder
	for _, span := range b.spans {
		sb.WriteString(spanText(span))
	}
	return sb.String()
}

// Scan splits text into spans in a single left-to-right pass.
// Unmarked text between markers is returned as [TextSpan]s.
//
// Matching is greedy and never backtracks over a matched marker.
// A backtick left over in unmarked text is reported as a [*SyntaxError].
func Scan(text string) ([]Span, error) {
	var (
		spans []Span
		last  int
	)
	plain := func(start, end int) error {
		s := text[start:end]
		if idx := strings.IndexByte(s, _markerDelim); idx >= 0 {
			return newSyntaxError(text, start+idx)
		}
		spans = append(spans, &TextSpan{Text: s})
		return nil
	}

	for _, m := range _markerPattern.FindAllStringSubmatchIndex(text, -1) {
		if last < m[0] {
			if err := plain(last, m[0]); err != nil {
				return nil, err
			}
		}

		group := func(i int) string { return text[m[2*i]:m[2*i+1]] }
		if m[4] >= 0 {
			spans = append(spans, &MarkSpan{
				Text:  group(1),
				Label: decodeLabel(group(2)),
			})
		} else {
			spans = append(spans, &SplitSpan{
				Prefix:        group(3),
				Fragment:      group(4),
				FragmentLabel: decodeLabel(group(5)),
				Suffix:        group(6),
				OuterLabel:    decodeLabel(group(7)),
			})
		}
		last = m[1]
	}

	if last < len(text) {
		if err := plain(last, len(text)); err != nil {
			return nil, err
		}
	}
	return spans, nil
}

func decodeLabel(s string) Label {
	r, _ := utf8.DecodeRuneInString(s)
	return Label(r)
}
