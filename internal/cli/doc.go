// Package cli implements the callhistory command line: the interactive call
// list, plain and structured page output, single-call lookup, config
// management and login.
package cli
