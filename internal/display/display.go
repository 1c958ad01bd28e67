// Package display holds the targets the clip browser writes fetched text
// into: a DOM element in the browser, and in-memory or stream targets on the
// host.
package display

import (
	"fmt"
	"io"
	"sync"
)

// Target receives plain text. Implementations never interpret markup.
type Target interface {
	SetText(text string)
}

// Buffer is an in-memory Target. The zero value is ready to use and holds
// no text until the first SetText.
type Buffer struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewBuffer returns a Buffer pre-filled with initial, as if the host page
// had rendered it before the controller ran. Pre-filling is not a write.
func NewBuffer(initial string) *Buffer {
	return &Buffer{text: initial}
}

func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.writes++
}

// Text returns the current content.
func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Writes returns how many times SetText has been called.
func (b *Buffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// Writer is a Target that prints each text on its own line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (wr *Writer) SetText(text string) {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	fmt.Fprintln(wr.w, text)
}

// Discard drops every write. It stands in for a page element that does not
// exist.
var Discard Target = discard{}

type discard struct{}

func (discard) SetText(string) {}
