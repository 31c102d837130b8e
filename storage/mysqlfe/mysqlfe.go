// Package mysqlfe is an engine.Frontend backed by a real MySQL
// connection, using github.com/go-sql-driver/mysql. It assembles the
// narrow set of statements the three Frontend methods need — CREATE
// SCHEMA, DROP SCHEMA, UPDATE ... SET — rather than general query
// execution, and maps *mysql.MySQLError codes onto the engine's
// sentinel errors so command.translate can build the right QueryError.
package mysqlfe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/mstgnz/sqlengine/dml"
	"github.com/mstgnz/sqlengine/engine"
)

// MySQL error codes this frontend recognizes. See
// github.com/go-sql-driver/mysql's errors catalog.
const (
	erDBCreateExists = 1007
	erDBDropExists   = 1008
	erNoSuchTable    = 1146
	erBadFieldError  = 1054
)

// Frontend implements engine.Frontend over a *sql.DB opened with the
// mysql driver.
type Frontend struct {
	db *sql.DB
}

// Open connects to MySQL using dsn (a go-sql-driver/mysql data source
// name).
func Open(dsn string) (*Frontend, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysqlfe: open: %w", err)
	}
	return &Frontend{db: db}, nil
}

// New wraps an already-open *sql.DB, useful for tests that hand in a
// sqlmock or testcontainers-backed connection.
func New(db *sql.DB) *Frontend {
	return &Frontend{db: db}
}

func (f *Frontend) Close() error { return f.db.Close() }

func (f *Frontend) CreateSchema(ctx context.Context, name string) error {
	_, err := f.db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA `%s`", name))
	return translateMySQLErr(err)
}

func (f *Frontend) DropSchema(ctx context.Context, name string) error {
	_, err := f.db.ExecContext(ctx, fmt.Sprintf("DROP SCHEMA `%s`", name))
	return translateMySQLErr(err)
}

func (f *Frontend) UpdateAll(ctx context.Context, schema, table string, pairs []dml.Pair) (int64, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	setClauses := make([]string, len(pairs))
	args := make([]interface{}, len(pairs))
	for i, p := range pairs {
		setClauses[i] = fmt.Sprintf("`%s` = ?", p.Column)
		args[i] = p.Text
	}

	stmt := fmt.Sprintf("UPDATE `%s`.`%s` SET %s", schema, table, strings.Join(setClauses, ", "))
	res, err := f.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, translateMySQLErr(err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mysqlfe: rows affected: %w", err)
	}
	return count, nil
}

// translateMySQLErr maps a *mysql.MySQLError to the engine package's
// sentinel errors, wrapped in engine.OperationError so command.translate
// knows this is a query-level operation failure rather than a system
// fault. Any other error (a dropped connection, context cancellation,
// driver-level corruption) is returned unchanged — it never reaches
// translate, and surfaces as SystemResult.SystemErr instead, per spec
// §7's split between the query-visible and system-only error planes. An
// unrecognized *mysql.MySQLError number is still wrapped, since it's a
// real operation-on-table failure, just not one of the four this engine
// enumerates; command.translate falls through to NotSupportedOperation
// for it, matching spec §4.5's "any other operation failure" row.
func translateMySQLErr(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if !asMySQLError(err, &mysqlErr) {
		return err
	}
	switch mysqlErr.Number {
	case erDBCreateExists:
		return &engine.OperationError{Err: engine.ErrSchemaAlreadyExists}
	case erDBDropExists:
		return &engine.OperationError{Err: engine.ErrSchemaDoesNotExist}
	case erNoSuchTable:
		return &engine.OperationError{Err: engine.ErrTableDoesNotExist}
	case erBadFieldError:
		return &engine.OperationError{Err: &engine.ErrColumnDoesNotExist{Names: extractColumnName(mysqlErr.Message)}}
	default:
		return &engine.OperationError{Err: mysqlErr}
	}
}

func asMySQLError(err error, target **mysql.MySQLError) bool {
	if e, ok := err.(*mysql.MySQLError); ok {
		*target = e
		return true
	}
	return false
}

// extractColumnName pulls the column name out of MySQL's "Unknown
// column 'x' in 'field list'" message; if it can't, it falls back to
// the raw message so the caller still gets something to show.
func extractColumnName(message string) []string {
	start := strings.IndexByte(message, '\'')
	if start < 0 {
		return []string{message}
	}
	end := strings.IndexByte(message[start+1:], '\'')
	if end < 0 {
		return []string{message}
	}
	return []string{message[start+1 : start+1+end]}
}
