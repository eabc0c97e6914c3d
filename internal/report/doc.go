// Package report provides report generation and output functionality.
//
// This package contains the writer for the static HTML coverage report.
// Report writing is separated from the report data structures (which live in
// the model package) so new output formats could be added without touching
// the aggregation logic.
//
// Design decision: The HTML document is produced with html/template rather
// than string concatenation because contextual auto-escaping is the one hard
// requirement of the renderer: file paths and event names come straight from
// user files and must never reach the document unescaped.
package report
