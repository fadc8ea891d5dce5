// Package logger provides the diagnostic sink used across blobfeed.
// Components receive an explicit Sink instead of writing to process-wide
// logging state, so embedding callers control where diagnostics go.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink receives diagnostic messages from components.
type Sink interface {
	// Debugf reports fine-grained progress (per-event, per-blob).
	Debugf(format string, args ...any)

	// Infof reports walk-level progress.
	Infof(format string, args ...any)

	// Warnf reports recoverable oddities (skipped events, odd payloads).
	Warnf(format string, args ...any)
}

// Writer is a Sink that prints levelled lines to an io.Writer.
type Writer struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// Ensure Writer implements the interface.
var _ Sink = (*Writer)(nil)

// NewWriter creates a Sink writing to out.
// Debug messages are printed only when verbose is true.
func NewWriter(out io.Writer, verbose bool) *Writer {
	if out == nil {
		out = os.Stderr
	}
	return &Writer{out: out, verbose: verbose}
}

// Debugf prints a debug line when verbose mode is enabled.
func (w *Writer) Debugf(format string, args ...any) {
	if !w.verbose {
		return
	}
	w.print("[DEBUG] ", format, args)
}

// Infof prints an informational line.
func (w *Writer) Infof(format string, args ...any) {
	w.print("[INFO] ", format, args)
}

// Warnf prints a warning line.
func (w *Writer) Warnf(format string, args ...any) {
	w.print("[WARN] ", format, args)
}

func (w *Writer) print(prefix, format string, args []any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, prefix+format+"\n", args...)
}

// nop discards all messages.
type nop struct{}

func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}

// Nop returns a Sink that discards everything.
// Used as the default when a caller passes no sink.
func Nop() Sink {
	return nop{}
}
