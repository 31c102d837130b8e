package command

import (
	"context"
	"errors"

	"github.com/mstgnz/sqlengine/engine"
	"github.com/mstgnz/sqlengine/sqlerr"
)

// SystemResult is the outer, system-level result every skin's Execute
// returns. A non-nil SystemErr means either a recovered panic escaping
// the Frontend call or a
// Frontend error that was not wrapped in *engine.OperationError — a
// dropped connection, a corrupt page — neither of which is query-client
// visible; Event and QueryErr are both zero in that case. Otherwise the
// Frontend's *engine.OperationError is translated into a QueryError —
// the translation table's final row guarantees the inner level is
// always populated once an OperationError is confirmed.
type SystemResult struct {
	Event     QueryEvent
	QueryErr  *QueryError
	SystemErr *sqlerr.DatabaseError
}

// CreateSchema holds a handle to the storage frontend and executes a
// CREATE SCHEMA command.
type CreateSchema struct {
	Handle *engine.Handle
	Name   string
}

func (c *CreateSchema) Execute(ctx context.Context) (result SystemResult) {
	defer recoverSystemError(&result, "create schema", c.Name)

	err := c.Handle.CreateSchema(ctx, c.Name)
	if err == nil {
		return SystemResult{Event: QueryEvent{Kind: SchemaCreated}}
	}
	var opErr *engine.OperationError
	if errors.As(err, &opErr) {
		return SystemResult{QueryErr: translate(opErr.Err, c.Name, c.Name)}
	}
	return systemErrorResult("create schema", c.Name, err)
}
