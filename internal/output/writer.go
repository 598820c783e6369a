// Package output provides canonical token output formatting.
package output

import (
	"bufio"
	"io"
)

// TokenWriter writes move tokens separated by spaces, wrapping lines at
// a configured width in the style of PGN movetext.
type TokenWriter struct {
	w       *bufio.Writer
	width   int
	lineLen int
}

// NewTokenWriter creates a token writer wrapping lines at width
// characters. A width below 1 disables wrapping.
func NewTokenWriter(w io.Writer, width int) *TokenWriter {
	return &TokenWriter{
		w:     bufio.NewWriter(w),
		width: width,
	}
}

// WriteToken writes one token, inserting a space or newline separator
// as needed to respect the line width.
func (tw *TokenWriter) WriteToken(token string) error {
	if tw.lineLen > 0 {
		if tw.width > 0 && tw.lineLen+1+len(token) > tw.width {
			if err := tw.w.WriteByte('\n'); err != nil {
				return err
			}
			tw.lineLen = 0
		} else {
			if err := tw.w.WriteByte(' '); err != nil {
				return err
			}
			tw.lineLen++
		}
	}
	n, err := tw.w.WriteString(token)
	tw.lineLen += n
	return err
}

// Flush flushes buffered output to the underlying writer.
func (tw *TokenWriter) Flush() error {
	return tw.w.Flush()
}

// Close terminates the current line, if any, and flushes.
func (tw *TokenWriter) Close() error {
	if tw.lineLen > 0 {
		if err := tw.w.WriteByte('\n'); err != nil {
			return err
		}
		tw.lineLen = 0
	}
	return tw.w.Flush()
}
