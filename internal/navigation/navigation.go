// Package navigation provides stand-ins for the browser's current location.
package navigation

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/taigrr/notesweep/internal/uri"
)

// Navigator moves the current page to a root-relative location.
type Navigator interface {
	Navigate(location string)
}

// History records every location it is sent to. It is safe for concurrent use.
type History struct {
	mu     sync.Mutex
	visits []string
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Navigate appends location to the history.
func (h *History) Navigate(location string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visits = append(h.visits, location)
}

// Current returns the most recent location, or "" if there has been no navigation.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.visits) == 0 {
		return ""
	}
	return h.visits[len(h.visits)-1]
}

// Visits returns a copy of every recorded location, oldest first.
func (h *History) Visits() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.visits)
}

// Writer prints each navigation as an absolute URL.
type Writer struct {
	mu   sync.Mutex
	out  io.Writer
	base string
}

// NewWriter returns a Writer that resolves locations against base and writes them to out.
func NewWriter(out io.Writer, base string) *Writer {
	return &Writer{out: out, base: base}
}

// Navigate writes "-> <url>" followed by a newline.
func (w *Writer) Navigate(location string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "-> %s\n", uri.Resolve(w.base, location))
}
