// Package astcoerce adapts dml's literal-coercion policy to real SQL
// ASTs produced by github.com/pingcap/tidb/pkg/parser: it walks an
// *ast.UpdateStmt's assignment list and reduces each right-hand
// expression to the textual literal form the constraint and codec
// engines consume.
//
// It accepts exactly three expression shapes, mirroring
// Pieczasz-smf/internal/parser/mysql's exprToString dispatch narrowed
// to the UPDATE-specific accept-list: a numeric literal, a
// single-quoted string literal, and a unary minus applied to a numeric
// literal. Anything else is dml.ErrNotSupported.
package astcoerce

import (
	"strings"

	"github.com/pingcap/tidb/pkg/parser/ast"
	"github.com/pingcap/tidb/pkg/parser/format"
	"github.com/pingcap/tidb/pkg/parser/opcode"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"

	"github.com/mstgnz/sqlengine/dml"
)

// Assignments reduces every assignment in an UPDATE statement's SET
// list to a dml.Pair. rawSQL is the original statement text, used only
// to build dml.ErrNotSupported when an assignment is rejected.
func Assignments(stmt *ast.UpdateStmt, rawSQL string) ([]dml.Pair, error) {
	pairs := make([]dml.Pair, 0, len(stmt.List))
	for _, assign := range stmt.List {
		text, err := literalText(assign.Expr)
		if err != nil {
			return nil, &dml.ErrNotSupported{RawSQL: rawSQL}
		}
		pairs = append(pairs, dml.Pair{
			Column: assign.Column.Name.O,
			Text:   text,
		})
	}
	return pairs, nil
}

// literalText implements the three-shape accept list. It returns an
// error for any other ast.ExprNode.
func literalText(expr ast.ExprNode) (string, error) {
	switch e := expr.(type) {
	case ast.ValueExpr:
		return valueExprText(e)
	case *ast.UnaryOperationExpr:
		if e.Op != opcode.Minus {
			return "", errUnsupportedExpr
		}
		inner, ok := e.V.(ast.ValueExpr)
		if !ok {
			return "", errUnsupportedExpr
		}
		if _, isString := inner.GetValue().(string); isString {
			// unary minus on a string literal is not a numeric literal
			return "", errUnsupportedExpr
		}
		text, err := valueExprText(inner)
		if err != nil {
			return "", err
		}
		return "-" + text, nil
	default:
		return "", errUnsupportedExpr
	}
}

// valueExprText returns a string literal's unquoted value, and renders
// any other ValueExpr back to SQL source text via Restore. A rendered
// literal that is not a plain number (NULL, TRUE/FALSE, a hex or bit
// literal) is rejected.
func valueExprText(expr ast.ValueExpr) (string, error) {
	if s, ok := expr.GetValue().(string); ok {
		return s, nil
	}
	restored, err := restore(expr)
	if err != nil {
		return "", err
	}
	if restored == "" || strings.TrimLeft(restored, "0123456789.eE+-") != "" {
		return "", errUnsupportedExpr
	}
	return restored, nil
}

func restore(expr ast.ExprNode) (string, error) {
	var sb strings.Builder
	ctx := format.NewRestoreCtx(format.DefaultRestoreFlags, &sb)
	if err := expr.Restore(ctx); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

type unsupportedExprError struct{}

func (unsupportedExprError) Error() string { return "astcoerce: unsupported assignment expression" }

var errUnsupportedExpr = unsupportedExprError{}
