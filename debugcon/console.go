// Package debugcon provides a small bounded debug text channel in the style
// of a debugger message window: messages accumulate in a fixed 80-byte
// buffer and reach the sink only on an explicit flush.
//
// The fxmath core never depends on this package; it exists for diagnostics
// in consumers. The default console writes flushed messages through the
// fxmath logger (see fxmath.SetLogger), so output is silent until a logger
// is configured.
package debugcon

import (
	"fmt"
	"io"

	"github.com/gogpu/fxmath"
)

// BufSize is the message buffer capacity in bytes. Writes beyond it are
// truncated, never grown: the channel models a fixed hardware-side buffer.
const BufSize = 80

// Console is a bounded debug message buffer with an explicit flush.
// A Console is not safe for concurrent use; give each goroutine its own or
// serialize access externally.
type Console struct {
	w   io.Writer
	buf [BufSize]byte
	n   int
}

// New creates a Console that flushes to w.
func New(w io.Writer) *Console {
	return &Console{w: w}
}

// Puts appends s to the message buffer and returns the number of bytes
// accepted, which is less than len(s) when the buffer fills up.
func (c *Console) Puts(s string) int {
	m := copy(c.buf[c.n:], s)
	c.n += m
	return m
}

// Printf formats into the message buffer. Like Puts, output beyond the
// buffer capacity is dropped; the return value is the byte count accepted.
func (c *Console) Printf(format string, args ...any) int {
	return c.Puts(fmt.Sprintf(format, args...))
}

// Len returns the number of buffered bytes awaiting a flush.
func (c *Console) Len() int {
	return c.n
}

// Flush writes the buffered message to the sink and empties the buffer.
// Flushing an empty buffer does nothing. The buffer is emptied even when the
// sink write fails; the write error is returned.
func (c *Console) Flush() error {
	if c.n == 0 {
		return nil
	}
	_, err := c.w.Write(c.buf[:c.n])
	c.n = 0
	return err
}

// logWriter emits each flushed message as a debug record on the fxmath
// logger.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	fxmath.Logger().Debug("debugcon", "msg", string(p))
	return len(p), nil
}

// std is the package-level console used by the top-level functions.
var std = New(logWriter{})

// SetOutput redirects the package-level console to w. Passing nil restores
// the default logger-backed sink.
func SetOutput(w io.Writer) {
	if w == nil {
		w = logWriter{}
	}
	std.w = w
	std.n = 0
}

// Puts appends to the package-level console.
func Puts(s string) int {
	return std.Puts(s)
}

// Printf formats into the package-level console.
func Printf(format string, args ...any) int {
	return std.Printf(format, args...)
}

// Flush flushes the package-level console.
func Flush() error {
	return std.Flush()
}
