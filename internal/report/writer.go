package report

import (
	"io"

	"github.com/nao1215/flpscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a coverage report in a specific format.
//
// Design decision: We use an interface rather than a concrete type so the
// CLI can write to files, stdout, or buffers with the same API, and so tests
// can render into memory.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.CoverageReport) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
