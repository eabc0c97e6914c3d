// Package analyzer computes parse coverage aggregates from an event stream.
//
// The analyzer is the middle stage of the flpscan pipeline: the flp package
// loads the decoded event stream, Analyze classifies and counts it, and the
// report package renders the result. Classification is a single linear pass
// over the events and the sub-events of plugin container events; nothing is
// inspected more than one level deep.
package analyzer
