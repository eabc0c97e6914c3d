// Package main provides the entry point for the flpscan CLI.
//
// flpscan generates parse coverage reports for FL Studio project files
// (.flp). It delegates all binary decoding to the external PyFLP dumper and
// renders how much of a file was decoded into known event types versus left
// opaque.
//
// Usage:
//
//	flpscan report <file.flp>
//	flpscan report <file.flp> -o coverage.html --top 50
//
// See --help for all available options.
package main

// main is the entry point for flpscan.
func main() {
	Execute()
}
