package config

// Default configuration values.
// The output file name and row limit match the original report tooling so
// existing scripts keep working unchanged.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "flpscan"

	// DefaultOutputFile is the report path used when --output is not given.
	// It is resolved relative to the working directory.
	DefaultOutputFile = "parse-report.html"

	// DefaultTopRows is the default display row limit for each ranked table.
	// 25 rows is enough to show every event type of a typical project while
	// keeping the unknown-ID tables readable for badly covered files.
	DefaultTopRows = 25
)

// Config holds all configuration options for flpscan.
// This struct is populated from CLI flags and the optional config file and
// passed through the application via dependency injection rather than
// global state.
type Config struct {
	// InputFile is the path of the FLP file to analyze.
	InputFile string

	// OutputFile is the path the HTML report is written to.
	OutputFile string

	// TopRows is the display row limit for each ranked table.
	TopRows int

	// ParserCommand is the name or path of the external FLP dumper command.
	ParserCommand string

	// ConfigFilePath is the explicit config file path, if the user gave one.
	ConfigFilePath string

	// Verbose enables debug-level logging.
	Verbose bool
}

// NewConfig creates a Config with default values.
// The parser command default lives in the flp package; the CLI layer wires
// it in through the --parser flag so this package stays independent of the
// adapter.
func NewConfig() *Config {
	return &Config{
		OutputFile: DefaultOutputFile,
		TopRows:    DefaultTopRows,
	}
}

// Validate checks the configuration for errors.
// It returns the first sentinel error encountered, or nil if the
// configuration is valid.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return ErrNoInput
	}
	if c.OutputFile == "" {
		return ErrEmptyOutputPath
	}
	if c.TopRows <= 0 {
		return ErrInvalidTopRows
	}
	if c.ParserCommand == "" {
		return ErrEmptyParserCommand
	}
	return nil
}
