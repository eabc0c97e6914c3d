package flp

import "errors"

// Parser invocation errors.
// These errors are returned by PyFLPParser.Parse and cover the three ways
// loading an event stream can fail before any aggregation happens.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each failure site. This allows callers to use
// errors.Is() for programmatic handling while the wrapped message still
// carries the file path or command name involved.
var (
	// ErrParserNotFound is returned when the external FLP dumper command
	// cannot be located on PATH. The wrapped message includes install
	// instructions because this is the first thing every new user hits.
	ErrParserNotFound = errors.New("FLP parser command not found")

	// ErrInputNotFound is returned when the input file does not exist or
	// cannot be read. The file is checked before the dumper is invoked so
	// the user gets a direct message instead of a subprocess failure.
	ErrInputNotFound = errors.New("input file not found")

	// ErrParseFailure is returned when the dumper rejects the input as
	// malformed, or when its output is not a valid event stream.
	ErrParseFailure = errors.New("failed to parse FLP file")
)
