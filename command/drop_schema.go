package command

import (
	"context"
	"errors"

	"github.com/mstgnz/sqlengine/engine"
)

// DropSchema holds a handle to the storage frontend and executes a
// DROP SCHEMA command.
type DropSchema struct {
	Handle *engine.Handle
	Name   string
}

func (c *DropSchema) Execute(ctx context.Context) (result SystemResult) {
	defer recoverSystemError(&result, "drop schema", c.Name)

	err := c.Handle.DropSchema(ctx, c.Name)
	if err == nil {
		return SystemResult{Event: QueryEvent{Kind: SchemaDropped}}
	}
	var opErr *engine.OperationError
	if errors.As(err, &opErr) {
		return SystemResult{QueryErr: translate(opErr.Err, c.Name, c.Name)}
	}
	return systemErrorResult("drop schema", c.Name, err)
}
