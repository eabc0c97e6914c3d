// Package config manages flpscan configuration.
//
// Configuration comes from three layers, lowest priority first: documented
// defaults, an optional .flpscan YAML file, and CLI flags. The config file
// only carries defaults the user wants to stop repeating on the command line
// (output path, display row limit, dumper command name); the input file is
// always a CLI argument.
package config
