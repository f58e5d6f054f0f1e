package log

import (
	"bytes"
	"fmt"
	"io"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the robot firmware's UART console.
const DefaultBaudRate = 115200

// OpenSerial opens a serial port for log output. Lines are terminated with
// CRLF so plain serial monitors render them correctly.
func OpenSerial(port string, baud int) (io.WriteCloser, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	p, err := serial.Open(port, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial log port %s: %w", port, err)
	}
	return NewCRLFWriter(p), nil
}

// CRLFWriter rewrites "\n" line endings to "\r\n".
type CRLFWriter struct {
	w io.WriteCloser
}

// NewCRLFWriter wraps w.
func NewCRLFWriter(w io.WriteCloser) *CRLFWriter {
	return &CRLFWriter{w: w}
}

// Write converts line endings and writes p. It reports len(p) on success so
// callers see their own byte count.
func (c *CRLFWriter) Write(p []byte) (int, error) {
	out := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the underlying writer.
func (c *CRLFWriter) Close() error {
	return c.w.Close()
}
