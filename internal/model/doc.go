// Package model defines the core data structures used throughout flpscan.
//
// This package contains the following main types:
//   - Event: One top-level event of an FLP file as decoded by the external parser
//   - SubEvent: A sub-event embedded in a VST plugin event
//   - CoverageSummary: Parsed-versus-unknown totals and percentages
//   - FrequencyTable: An insertion-ordered counter with ranked output
//   - CoverageReport: The full per-invocation aggregate handed to the renderer
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (flp, analyzer, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The Event and SubEvent structs carry JSON tags matching the wire format of
// the external FLP dumper, so the flp package can decode its output directly
// into model types without an intermediate representation.
package model
