package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstgnz/sqlengine/dml"
	"github.com/mstgnz/sqlengine/engine"
)

func TestCreateSchema_Success(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{})
	c := &CreateSchema{Handle: h, Name: "analytics"}

	res := c.Execute(context.Background())
	require.Nil(t, res.SystemErr)
	require.Nil(t, res.QueryErr)
	assert.Equal(t, QueryEvent{Kind: SchemaCreated}, res.Event)
}

func TestCreateSchema_AlreadyExists(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{createErr: &engine.OperationError{Err: engine.ErrSchemaAlreadyExists}})
	c := &CreateSchema{Handle: h, Name: "analytics"}

	res := c.Execute(context.Background())
	require.Nil(t, res.SystemErr)
	require.NotNil(t, res.QueryErr)
	assert.Equal(t, SchemaAlreadyExists, res.QueryErr.Kind)
	assert.Equal(t, "analytics", res.QueryErr.Name)
}

func TestDropSchema_DoesNotExist(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{dropErr: &engine.OperationError{Err: engine.ErrSchemaDoesNotExist}})
	c := &DropSchema{Handle: h, Name: "analytics"}

	res := c.Execute(context.Background())
	require.NotNil(t, res.QueryErr)
	assert.Equal(t, SchemaDoesNotExist, res.QueryErr.Kind)
}

func TestUpdate_Success(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{updateN: 3})
	u := &Update{
		Handle: h, Schema: "schema", Table: "table",
		Pairs:  []dml.Pair{{Column: "x", Text: "-5"}},
		RawSQL: "UPDATE table SET x = -5",
	}

	res := u.Execute(context.Background())
	require.Nil(t, res.QueryErr)
	assert.Equal(t, QueryEvent{Kind: RecordsUpdated, Count: 3}, res.Event)
}

func TestUpdate_TableDoesNotExist(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{updateErr: &engine.OperationError{Err: engine.ErrTableDoesNotExist}})
	u := &Update{Handle: h, Schema: "schema", Table: "table", RawSQL: "UPDATE table SET x = -5"}

	res := u.Execute(context.Background())
	require.NotNil(t, res.QueryErr)
	assert.Equal(t, TableDoesNotExist, res.QueryErr.Kind)
	assert.Equal(t, "schema.table", res.QueryErr.Name)
}

func TestUpdate_ColumnDoesNotExist(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{updateErr: &engine.OperationError{Err: &engine.ErrColumnDoesNotExist{Names: []string{"missing"}}}})
	u := &Update{Handle: h, Schema: "schema", Table: "table", RawSQL: "UPDATE table SET missing = 1"}

	res := u.Execute(context.Background())
	require.NotNil(t, res.QueryErr)
	assert.Equal(t, ColumnDoesNotExist, res.QueryErr.Kind)
	assert.Equal(t, []string{"missing"}, res.QueryErr.Columns)
}

// TestUpdate_UnrecognizedOperationErrorIsNotSupportedOperation covers an
// OperationError the translation table doesn't specifically enumerate —
// still a query-level failure, so it falls through to
// NotSupportedOperation rather than escaping to the system plane.
func TestUpdate_UnrecognizedOperationErrorIsNotSupportedOperation(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{updateErr: &engine.OperationError{Err: errGeneric}})
	u := &Update{Handle: h, Schema: "schema", Table: "table", RawSQL: "UPDATE table SET x = 1"}

	res := u.Execute(context.Background())
	require.NotNil(t, res.QueryErr)
	assert.Equal(t, NotSupportedOperation, res.QueryErr.Kind)
	assert.Equal(t, "UPDATE table SET x = 1", res.QueryErr.Name)
}

// TestUpdate_UnwrappedErrorBecomesSystemError covers the bug this
// engine.OperationError split fixes: a Frontend error that is NOT
// wrapped in OperationError (a dropped connection, driver corruption)
// must never surface as a QueryError — it belongs to the operator-only
// system plane.
func TestUpdate_UnwrappedErrorBecomesSystemError(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{updateErr: errGeneric})
	u := &Update{Handle: h, Schema: "schema", Table: "table", RawSQL: "UPDATE table SET x = 1"}

	res := u.Execute(context.Background())
	require.NotNil(t, res.SystemErr)
	require.Nil(t, res.QueryErr)
	assert.ErrorIs(t, res.SystemErr, errGeneric)
}

// TestCreateSchema_UnwrappedErrorBecomesSystemError mirrors the Update
// case for the CreateSchema skin.
func TestCreateSchema_UnwrappedErrorBecomesSystemError(t *testing.T) {
	h := engine.NewHandle(&fakeFrontend{createErr: errGeneric})
	c := &CreateSchema{Handle: h, Name: "analytics"}

	res := c.Execute(context.Background())
	require.NotNil(t, res.SystemErr)
	require.Nil(t, res.QueryErr)
	assert.ErrorIs(t, res.SystemErr, errGeneric)
}

func TestCreateSchema_PanicBecomesSystemError(t *testing.T) {
	h := engine.NewHandle(&panickingFrontend{})
	c := &CreateSchema{Handle: h, Name: "analytics"}

	res := c.Execute(context.Background())
	require.NotNil(t, res.SystemErr)
	require.Nil(t, res.QueryErr)
}

type panickingFrontend struct{ fakeFrontend }

func (p *panickingFrontend) CreateSchema(ctx context.Context, name string) error {
	panic("storage corrupted")
}
