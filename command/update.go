package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/mstgnz/sqlengine/dml"
	"github.com/mstgnz/sqlengine/engine"
)

// Update holds a handle to the storage frontend and executes an UPDATE
// command against a list of assignments already reduced to
// (column, textual-literal) pairs — see astcoerce for how those pairs
// are produced from a parsed AST.
type Update struct {
	Handle *engine.Handle
	Schema string
	Table  string
	Pairs  []dml.Pair
	RawSQL string
}

func (c *Update) Execute(ctx context.Context) (result SystemResult) {
	defer recoverSystemError(&result, "update", c.RawSQL)

	qualified := fmt.Sprintf("%s.%s", c.Schema, c.Table)
	count, err := c.Handle.UpdateAll(ctx, c.Schema, c.Table, c.Pairs)
	if err == nil {
		return SystemResult{Event: QueryEvent{Kind: RecordsUpdated, Count: count}}
	}
	var opErr *engine.OperationError
	if errors.As(err, &opErr) {
		return SystemResult{QueryErr: translate(opErr.Err, qualified, c.RawSQL)}
	}
	return systemErrorResult("update", qualified, err)
}
