// Package highlight provides support to syntax highlight code content.
// It uses the Chroma library to do this work.
//
// Highlighted code is produced as a list of document nodes:
// plain text for unstyled tokens,
// and spans carrying either a Chroma class or an inline style.
package highlight
