// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"go.abhg.dev/talkdeck/internal/linebuf"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that logs each line written to it
// to the given testing.TB.
// A trailing partial line is logged when the test finishes.
func Writer(t testing.TB) io.Writer {
	w := linebuf.NewWriter(func(line []byte) {
		t.Logf("%s", bytes.TrimSuffix(line, _newline))
	})
	t.Cleanup(w.Flush)
	return w
}
