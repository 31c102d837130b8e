package command

import (
	"fmt"

	"github.com/mstgnz/sqlengine/sqlerr"
)

// recoverSystemError converts a panic escaping a skin's storage call
// (for example a codec panic inside a Frontend) into the outer
// system-level result
// instead of crashing the caller. It must be deferred with a named
// result parameter.
func recoverSystemError(result *SystemResult, op, subject string) {
	if r := recover(); r != nil {
		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%v", r)
		}
		*result = SystemResult{
			SystemErr: sqlerr.New(sqlerr.ErrTypeInternal, op+" panicked", cause).
				WithContext("subject", subject).
				WithSeverity(sqlerr.SeverityCritical),
		}
	}
}

// systemErrorResult builds the outer system-level result for a Frontend
// error that was NOT wrapped in engine.OperationError — a connection
// drop, a corrupt page, anything outside the operation-on-table plane.
// It never reaches translate, so it can never be misreported to the SQL
// client as NotSupportedOperation.
func systemErrorResult(op, subject string, err error) SystemResult {
	return SystemResult{
		SystemErr: sqlerr.New(sqlerr.ErrTypeStorage, op+" failed", err).
			WithContext("subject", subject),
	}
}
