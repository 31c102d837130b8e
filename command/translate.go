package command

import (
	"errors"

	"github.com/mstgnz/sqlengine/engine"
)

// translate maps the Err unwrapped from a Frontend's *engine.OperationError
// to the user-visible QueryError per the table in spec §4.5. Callers only
// ever reach this once they've confirmed the Frontend error belongs to
// the operation-on-table plane — a Frontend error that was NOT wrapped
// in OperationError never comes here at all; it becomes
// SystemResult.SystemErr instead. subject is the schema name or
// "schema.table" appropriate to the calling skin, used for the
// human-readable name the QueryError carries; rawSQL is what the
// NotSupportedOperation fallback carries, per spec's
// not_supported_operation(raw_sql). A nil err yields a nil QueryError.
func translate(err error, subject, rawSQL string) *QueryError {
	if err == nil {
		return nil
	}

	var colErr *engine.ErrColumnDoesNotExist
	switch {
	case errors.Is(err, engine.ErrSchemaAlreadyExists):
		return errSchemaAlreadyExists(subject)
	case errors.Is(err, engine.ErrSchemaDoesNotExist):
		return errSchemaDoesNotExist(subject)
	case errors.Is(err, engine.ErrTableDoesNotExist):
		return errTableDoesNotExist(subject)
	case errors.As(err, &colErr):
		return errColumnDoesNotExist(colErr.Names)
	default:
		return errNotSupportedOperation(rawSQL)
	}
}
