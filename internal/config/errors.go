package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no input FLP file is specified.
	ErrNoInput = errors.New("no input file specified: provide the path to an .flp file")

	// ErrInvalidTopRows is returned when the display row limit is not positive.
	// A limit of zero would render four empty tables, which is never useful.
	ErrInvalidTopRows = errors.New("invalid row limit: --top must be positive")

	// ErrEmptyOutputPath is returned when the output file path is empty.
	ErrEmptyOutputPath = errors.New("invalid output path: must not be empty")

	// ErrEmptyParserCommand is returned when the dumper command name is empty.
	ErrEmptyParserCommand = errors.New("invalid parser command: must not be empty")
)
