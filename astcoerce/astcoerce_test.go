package astcoerce

import (
	"testing"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstgnz/sqlengine/dml"
)

func parseUpdate(t *testing.T, sql string) *ast.UpdateStmt {
	t.Helper()
	p := parser.New()
	stmtNodes, _, err := p.ParseSQL(sql)
	require.NoError(t, err)
	require.Len(t, stmtNodes, 1)
	update, ok := stmtNodes[0].(*ast.UpdateStmt)
	require.True(t, ok)
	return update
}

func TestAssignments_NumericLiteral(t *testing.T) {
	stmt := parseUpdate(t, "UPDATE t SET x = 5")
	pairs, err := Assignments(stmt, "UPDATE t SET x = 5")
	require.NoError(t, err)
	assert.Equal(t, []dml.Pair{{Column: "x", Text: "5"}}, pairs)
}

func TestAssignments_UnaryMinusNumeric(t *testing.T) {
	stmt := parseUpdate(t, "UPDATE t SET x = -5")
	pairs, err := Assignments(stmt, "UPDATE t SET x = -5")
	require.NoError(t, err)
	assert.Equal(t, []dml.Pair{{Column: "x", Text: "-5"}}, pairs)
}

func TestAssignments_StringLiteral(t *testing.T) {
	stmt := parseUpdate(t, "UPDATE t SET name = 'str'")
	pairs, err := Assignments(stmt, "UPDATE t SET name = 'str'")
	require.NoError(t, err)
	assert.Equal(t, []dml.Pair{{Column: "name", Text: "str"}}, pairs)
}

func TestAssignments_UnsupportedExpression(t *testing.T) {
	stmt := parseUpdate(t, "UPDATE t SET x = y + 1")
	_, err := Assignments(stmt, "UPDATE t SET x = y + 1")
	require.Error(t, err)
	var notSupported *dml.ErrNotSupported
	require.ErrorAs(t, err, &notSupported)
	assert.Equal(t, "UPDATE t SET x = y + 1", notSupported.RawSQL)
}

func TestAssignments_MultipleAssignments(t *testing.T) {
	stmt := parseUpdate(t, "UPDATE t SET x = 1, name = 'a', y = -2")
	pairs, err := Assignments(stmt, "UPDATE t SET x = 1, name = 'a', y = -2")
	require.NoError(t, err)
	assert.Equal(t, []dml.Pair{
		{Column: "x", Text: "1"},
		{Column: "name", Text: "a"},
		{Column: "y", Text: "-2"},
	}, pairs)
}
