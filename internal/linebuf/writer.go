// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer is an io.Writer that splits its input on newlines,
// handing each complete line, including its trailing newline,
// to a callback.
//
// Writer is safe for concurrent use.
// The callback is never called concurrently.
type Writer struct {
	writeLine func([]byte)

	// Holds a partial line from a prior write.
	buff bytes.Buffer
	mu   sync.Mutex // guards buff and calls to writeLine
}

var _ io.Writer = (*Writer)(nil)

// NewWriter builds a Writer that calls fn for each line.
// Call Flush when done writing to receive a trailing partial line.
func NewWriter(fn func([]byte)) *Writer {
	return &Writer{writeLine: fn}
}

// Write writes bs, calling the callback for every line it completes.
func (w *Writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx+1], bs[idx+1:]

		if w.buff.Len() == 0 {
			w.writeLine(line)
			continue
		}

		w.buff.Write(line)
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
	return total, nil
}

// Flush hands off a buffered partial line, if any.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
}
