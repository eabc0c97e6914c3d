// Package flp adapts the external FLP parser for use by flpscan.
//
// flpscan does not decode the FLP binary format itself. All decoding is
// delegated to an external PyFLP-based dumper command that parses the file
// and emits the decoded event stream as JSON on stdout. This package locates
// and runs that command and translates its output into model types.
//
// Design decision: The parser is consumed through the Parser interface so
// the analyzer and the CLI never depend on how events are obtained. The
// production implementation is a subprocess bridge because the decoding
// library lives outside this repository; tests substitute an in-process
// fake. This mirrors how the rest of the tool treats the parser: an opaque
// collaborator with a narrow contract, not something to reimplement.
package flp
