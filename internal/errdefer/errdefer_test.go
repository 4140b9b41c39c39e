package errdefer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var err error
		Close(&err, stubCloser{})
		assert.NoError(t, err)
	})

	t.Run("close error", func(t *testing.T) {
		t.Parallel()

		give := errors.New("sadness")

		var err error
		Close(&err, stubCloser{err: give})
		assert.ErrorIs(t, err, give)
	})

	t.Run("both", func(t *testing.T) {
		t.Parallel()

		first := errors.New("write failed")
		second := errors.New("close failed")

		err := first
		Close(&err, stubCloser{err: second})
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
	})

	t.Run("keeps error on clean close", func(t *testing.T) {
		t.Parallel()

		give := errors.New("write failed")

		err := give
		Close(&err, stubCloser{})
		assert.ErrorIs(t, err, give)
	})
}

type stubCloser struct {
	err error
}

func (s stubCloser) Close() error {
	return s.err
}
