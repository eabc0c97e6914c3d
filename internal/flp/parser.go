package flp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/nao1215/flpscan/internal/model"
)

// DefaultCommand is the name of the external FLP dumper command.
// The dumper is a thin PyFLP wrapper that parses one .flp file and prints
// the decoded event stream as JSON.
const DefaultCommand = "flp2json"

// installHint is appended to ErrParserNotFound so the user can fix the
// missing dependency without searching the documentation.
const installHint = `install the PyFLP dumper and make sure it is on your PATH, for example:
  python3 -m pip install pyflp flp2json
  flpscan report /path/to/file.flp -o parse-report.html`

// Parser decodes one FLP file into its ordered top-level event stream.
// Implementations must return events in file order.
type Parser interface {
	// Parse reads the file at path and returns its decoded events.
	// The context cancels a parse in progress.
	Parse(ctx context.Context, path string) ([]model.Event, error)
}

// PyFLPParser is the production Parser. It runs the external dumper command
// as a subprocess and decodes the JSON event stream it prints.
type PyFLPParser struct {
	// command is the dumper command name or path.
	command string

	// logger is used for debug logging of subprocess invocations.
	logger *slog.Logger
}

// Option configures a PyFLPParser.
type Option func(*PyFLPParser)

// WithCommand overrides the dumper command name.
// Use this when the dumper is installed under a different name or outside PATH.
func WithCommand(command string) Option {
	return func(p *PyFLPParser) {
		p.command = command
	}
}

// WithLogger sets a custom logger for the parser.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *PyFLPParser) {
		p.logger = logger
	}
}

// NewPyFLPParser creates a PyFLPParser with the given options.
func NewPyFLPParser(opts ...Option) *PyFLPParser {
	p := &PyFLPParser{
		command: DefaultCommand,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Parse runs the dumper on the file at path and returns the decoded events.
// It returns ErrInputNotFound if the file is missing, ErrParserNotFound if
// the dumper command is not available, and ErrParseFailure if the dumper
// rejects the file or emits an invalid event stream.
func (p *PyFLPParser) Parse(ctx context.Context, path string) ([]model.Event, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("cannot read input file %s: %w", path, err)
	}

	bin, err := exec.LookPath(p.command)
	if err != nil {
		return nil, fmt.Errorf("%w: %q\n%s", ErrParserNotFound, p.command, installHint)
	}

	p.logger.Debug("running FLP dumper", "command", bin, "file", path)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Cancellation beats whatever exit status the killed process had.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrParseFailure, path, dumperFailure(&stderr, err))
	}

	events, err := DecodeEvents(&stdout)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("FLP dumper finished", "file", path, "events", len(events))
	return events, nil
}

// dumperFailure extracts a one-line failure reason from the dumper's stderr,
// falling back to the exec error when the dumper printed nothing.
func dumperFailure(stderr *bytes.Buffer, execErr error) string {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return execErr.Error()
	}
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

// eventDocument is the wire format of the dumper output.
type eventDocument struct {
	Events []model.Event `json:"events"`
}

// DecodeEvents decodes a dumper JSON event stream from r.
// A document without an events array yields an empty slice, never nil maps
// downstream; syntactically invalid JSON is reported as ErrParseFailure.
func DecodeEvents(r io.Reader) ([]model.Event, error) {
	var doc eventDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: invalid event stream from dumper: %v", ErrParseFailure, err)
	}
	return doc.Events, nil
}
