// Package pgfe is an engine.Frontend backed by a real PostgreSQL
// connection, using github.com/lib/pq. It mirrors storage/mysqlfe's
// shape, mapping *pq.Error SQLSTATE codes onto the engine's sentinel
// errors.
package pgfe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/mstgnz/sqlengine/dml"
	"github.com/mstgnz/sqlengine/engine"
)

// PostgreSQL SQLSTATE codes this frontend recognizes.
const (
	sqlStateDuplicateSchema   = "42P06"
	sqlStateInvalidSchemaName = "3F000"
	sqlStateUndefinedTable    = "42P01"
	sqlStateUndefinedColumn   = "42703"
)

// Frontend implements engine.Frontend over a *sql.DB opened with the
// lib/pq driver.
type Frontend struct {
	db *sql.DB
}

// Open connects to PostgreSQL using dsn (a lib/pq connection string).
func Open(dsn string) (*Frontend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("pgfe: open: %w", err)
	}
	return &Frontend{db: db}, nil
}

func New(db *sql.DB) *Frontend { return &Frontend{db: db} }

func (f *Frontend) Close() error { return f.db.Close() }

func (f *Frontend) CreateSchema(ctx context.Context, name string) error {
	_, err := f.db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %q", name))
	return translatePQErr(err)
}

func (f *Frontend) DropSchema(ctx context.Context, name string) error {
	_, err := f.db.ExecContext(ctx, fmt.Sprintf("DROP SCHEMA %q", name))
	return translatePQErr(err)
}

func (f *Frontend) UpdateAll(ctx context.Context, schema, table string, pairs []dml.Pair) (int64, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	setClauses := make([]string, len(pairs))
	args := make([]interface{}, len(pairs))
	for i, p := range pairs {
		setClauses[i] = fmt.Sprintf("%q = $%d", p.Column, i+1)
		args[i] = p.Text
	}

	stmt := fmt.Sprintf("UPDATE %q.%q SET %s", schema, table, strings.Join(setClauses, ", "))
	res, err := f.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, translatePQErr(err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pgfe: rows affected: %w", err)
	}
	return count, nil
}

// translatePQErr maps a *pq.Error SQLSTATE to the engine package's
// sentinel errors, wrapped in engine.OperationError so command.translate
// knows this is a query-level operation failure rather than a system
// fault. Any other error (a dropped connection, context cancellation)
// is returned unchanged and surfaces as SystemResult.SystemErr instead.
// An unrecognized SQLSTATE is still a real operation-on-table failure —
// it is wrapped too, and command.translate falls through to
// NotSupportedOperation for it.
func translatePQErr(err error) error {
	if err == nil {
		return nil
	}
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return err
	}
	switch string(pqErr.Code) {
	case sqlStateDuplicateSchema:
		return &engine.OperationError{Err: engine.ErrSchemaAlreadyExists}
	case sqlStateInvalidSchemaName:
		return &engine.OperationError{Err: engine.ErrSchemaDoesNotExist}
	case sqlStateUndefinedTable:
		return &engine.OperationError{Err: engine.ErrTableDoesNotExist}
	case sqlStateUndefinedColumn:
		return &engine.OperationError{Err: &engine.ErrColumnDoesNotExist{Names: []string{pqErr.Column}}}
	default:
		return &engine.OperationError{Err: pqErr}
	}
}
