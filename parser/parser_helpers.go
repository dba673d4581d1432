/*
File    : minij/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package-level helpers shared across the expression, statement, and
// class parsing files that don't belong to any one of them in particular.
package parser

// ParseSource is a convenience wrapper combining NewParser and
// ParseProgram for callers (the CLI, the REPL, tests) that don't need
// the Parser value itself.
func ParseSource(src string) (*Program, error) {
	return NewParser(src).ParseProgram()
}
