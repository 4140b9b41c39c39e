package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	*testing.T

	Buffer bytes.Buffer
}

func (t *fakeT) Logf(msg string, args ...interface{}) {
	fmt.Fprintln(&t.Buffer, fmt.Sprintf(msg, args...))
	// println to make sure it ends with a newline
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var fake *fakeT
	t.Run("write", func(t *testing.T) {
		fake = &fakeT{T: t}
		w := Writer(fake)

		io.WriteString(w, "foo\nbar\nb")
		io.WriteString(w, "az")
		assert.Equal(t, "foo\nbar\n", fake.Buffer.String())
	})

	assert.Equal(t, "foo\nbar\nbaz\n", fake.Buffer.String(),
		"partial line must be logged at the end of the test")
}
