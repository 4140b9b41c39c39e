// Package callout implements highlighted code callouts:
// code blocks annotated with markers that are revealed one step at a time.
//
// # Markers
//
// A simple marker is a backtick-delimited span followed by a one-character label:
//
//	fn gcd(mut n: `u64`1, mut m: `u64`1) -> `u64`1 {
//
// All three u64 spans are highlighted in step 1.
//
// A split marker embeds a $-delimited fragment inside the span,
// with a label after the fragment and another after the span:
//
//	`slice: &$'a$5 [T],`2
//
// In step 5 only 'a is highlighted.
// In step 2 the whole "slice: &'a [T]," is highlighted as one unit.
// In every other step it renders as plain text.
//
// Backtick and $ are reserved inside markers and cannot be escaped.
// A backtick that does not begin a well-formed marker is a [SyntaxError].
// A $ outside of any marker is ordinary text.
//
// # Steps
//
// Every distinct label in a block becomes one step,
// ordered by character value.
// Label '0' is special: a block that uses it starts on step 0.
// A block that doesn't gets an extra baseline step up front
// with nothing highlighted.
package callout
