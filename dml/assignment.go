// Package dml holds the value-coercion types shared by the UPDATE
// command skin and its AST-specific realization in astcoerce: a
// (column, textual-literal) pair and the narrow error raised when an
// AST expression doesn't match one of the accepted literal shapes.
package dml

import "fmt"

// Pair is a (column-name, textual-value) produced from a parsed AST
// assignment. It is the form the storage frontend's UpdateAll consumes;
// constraint validation and codec encoding happen downstream of it.
type Pair struct {
	Column string
	Text   string
}

// ErrNotSupported is raised when an UPDATE assignment's right-hand
// expression is not one of the three accepted literal shapes (numeric,
// single-quoted string, unary-minus numeric). It carries the raw SQL
// text so the command layer can build QueryError.NotSupportedOperation.
type ErrNotSupported struct {
	RawSQL string
}

func (e *ErrNotSupported) Error() string {
	return fmt.Sprintf("dml: unsupported assignment expression: %s", e.RawSQL)
}
