package main

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nao1215/flpscan/internal/config"
	"github.com/nao1215/flpscan/internal/flp"
)

// TestNewReportCmd tests the report command creation.
func TestNewReportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewReportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "report [flp-file]" {
			t.Errorf("expected use 'report [flp-file]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		t.Parallel()
		if cmd.Args == nil {
			t.Error("expected Args validator")
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultOutputFile {
			t.Errorf("expected default %q, got %q", config.DefaultOutputFile, flag.DefValue)
		}
	})

	t.Run("has top flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("top")
		if flag == nil {
			t.Fatal("expected top flag")
		}
		if flag.DefValue != "25" {
			t.Errorf("expected default '25', got %q", flag.DefValue)
		}
	})

	t.Run("has parser flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("parser")
		if flag == nil {
			t.Fatal("expected parser flag")
		}
		if flag.DefValue != flp.DefaultCommand {
			t.Errorf("expected default %q, got %q", flp.DefaultCommand, flag.DefValue)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})
}

// TestBuildConfig tests config construction from flags and config file.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults without flags", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		if err := cmd.Flags().Parse(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"song.flp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputFile != "song.flp" {
			t.Errorf("got %q, expected %q", cfg.InputFile, "song.flp")
		}
		if cfg.OutputFile != config.DefaultOutputFile {
			t.Errorf("got %q, expected %q", cfg.OutputFile, config.DefaultOutputFile)
		}
		if cfg.TopRows != config.DefaultTopRows {
			t.Errorf("got %d, expected %d", cfg.TopRows, config.DefaultTopRows)
		}
		if cfg.ParserCommand != flp.DefaultCommand {
			t.Errorf("got %q, expected %q", cfg.ParserCommand, flp.DefaultCommand)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected valid config, got %v", err)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		args := []string{"-o", "custom.html", "--top", "5", "--parser", "my-dumper"}
		if err := cmd.Flags().Parse(args); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"song.flp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OutputFile != "custom.html" {
			t.Errorf("got %q, expected %q", cfg.OutputFile, "custom.html")
		}
		if cfg.TopRows != 5 {
			t.Errorf("got %d, expected 5", cfg.TopRows)
		}
		if cfg.ParserCommand != "my-dumper" {
			t.Errorf("got %q, expected %q", cfg.ParserCommand, "my-dumper")
		}
	})

	t.Run("config file fills defaults", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".flpscan")
		content := "output: from-file.html\ntop: 7\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewReportCmd()
		if err := cmd.Flags().Parse([]string{"-c", configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"song.flp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OutputFile != "from-file.html" {
			t.Errorf("got %q, expected %q", cfg.OutputFile, "from-file.html")
		}
		if cfg.TopRows != 7 {
			t.Errorf("got %d, expected 7", cfg.TopRows)
		}
		// Parser comes from the flag default when the file does not set it.
		if cfg.ParserCommand != flp.DefaultCommand {
			t.Errorf("got %q, expected %q", cfg.ParserCommand, flp.DefaultCommand)
		}
	})

	t.Run("changed flags beat config file values", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".flpscan")
		if err := os.WriteFile(configPath, []byte("top: 7\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewReportCmd()
		if err := cmd.Flags().Parse([]string{"-c", configPath, "--top", "3"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"song.flp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TopRows != 3 {
			t.Errorf("got %d, expected 3", cfg.TopRows)
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if err := cmd.Flags().Parse([]string{"-c", missing}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if _, err := buildConfig(cmd, []string{"song.flp"}); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})
}

// TestReportCommandEndToEnd runs the full pipeline against a fake dumper.
func TestReportCommandEndToEnd(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}

	dir := t.TempDir()

	input := filepath.Join(dir, "song.flp")
	if err := os.WriteFile(input, []byte("FLhd"), 0600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	dumper := filepath.Join(dir, "fake-flp2json")
	script := `#!/bin/sh
echo '{"events":[
  {"id":199,"name":"Version","kind":"AsciiEvent","size":8},
  {"id":225,"name":null,"kind":"UnknownDataEvent","size":413}
]}'
`
	if err := os.WriteFile(dumper, []byte(script), 0700); err != nil {
		t.Fatalf("failed to write dumper script: %v", err)
	}

	output := filepath.Join(dir, "out", "report.html")

	root := NewRootCmd()
	root.SetArgs([]string{"report", input, "-o", output, "--parser", dumper})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "FLP Parse Coverage Report") {
		t.Error("expected report title in output file")
	}
	if !strings.Contains(html, "Version") {
		t.Error("expected parsed event name in output file")
	}
	if !strings.Contains(html, "1 (50.00%)") {
		t.Error("expected 50 percent coverage metrics")
	}
}

// TestReportCommandFailure tests that failures write no output file.
func TestReportCommandFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "report.html")

	root := NewRootCmd()
	root.SetArgs([]string{"report", filepath.Join(dir, "missing.flp"), "-o", output})
	err := root.Execute()
	if !errors.Is(err, flp.ErrInputNotFound) {
		t.Errorf("got %v, expected ErrInputNotFound", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("expected no output file after failure")
	}
}
