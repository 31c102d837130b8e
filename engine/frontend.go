// Package engine defines the storage-frontend contract consumed by the
// command dispatch skins, and Handle, the scoped mutual-exclusion
// wrapper that serializes concurrent command invocations against one
// Frontend.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/mstgnz/sqlengine/dml"
)

// Frontend is the backend storage driver contract this package
// consumes. Query planning, transactions, and persistence are entirely
// its concern. Neither implementation in storage/ (mysqlfe, pgfe) runs
// the type system's constraints or codecs: each hands a pair's text to
// the database driver as a bind parameter, unvalidated and unencoded.
// A failed operation must be
// reported as an *OperationError (wrapping either one of the sentinels
// below or any other driver-level error the operation itself produced);
// anything returned unwrapped is treated as a system-level fault — a
// dropped connection, a corrupt page — and never reaches the SQL client
// as a typed query error.
type Frontend interface {
	CreateSchema(ctx context.Context, name string) error
	DropSchema(ctx context.Context, name string) error
	UpdateAll(ctx context.Context, schema, table string, pairs []dml.Pair) (rowCount int64, err error)
}

// OperationError marks a Frontend failure as belonging to the
// query-level "operation on table" plane — command.translate unwraps it
// and matches Err against the sentinels below, falling back to
// NotSupportedOperation for any Err it doesn't recognize. A Frontend
// error NOT wrapped in OperationError skips translate entirely and
// surfaces as SystemResult.SystemErr instead, per spec §7's split
// between the query-visible and system-only error planes.
type OperationError struct {
	Err error
}

func (e *OperationError) Error() string { return e.Err.Error() }
func (e *OperationError) Unwrap() error { return e.Err }

// Sentinel errors a Frontend implementation wraps in OperationError;
// command.translate matches against these with errors.Is/errors.As to build
// the corresponding QueryError.
var (
	ErrSchemaAlreadyExists = errors.New("engine: schema already exists")
	ErrSchemaDoesNotExist  = errors.New("engine: schema does not exist")
	ErrTableDoesNotExist   = errors.New("engine: table does not exist")
)

// ErrColumnDoesNotExist carries the offending column names.
type ErrColumnDoesNotExist struct {
	Names []string
}

func (e *ErrColumnDoesNotExist) Error() string {
	return fmt.Sprintf("engine: columns do not exist: %v", e.Names)
}
