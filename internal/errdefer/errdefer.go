// Package errdefer runs deferred cleanup operations
// whose errors must not be lost.
package errdefer

import (
	"errors"
	"io"

	"braces.dev/errtrace"
)

// Close closes closer and joins its error, if any,
// into the error pointed to by err.
//
// Use it inside a defer statement with a named return:
//
//	func write(path string) (err error) {
//		f, err := os.Create(path)
//		...
//		defer errdefer.Close(&err, f)
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, errtrace.Wrap(closer.Close()))
}
