package errors

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// SQLSTATE classes and codes that mean something other than a plain db failure
var pgCodes = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"23503": ErrorCodeInvalidArgument, // foreign_key_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation
	"22003": ErrorCodeInvalidArgument, // numeric_value_out_of_range
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
	"53300": ErrorCodeUnavailable,     // too_many_connections
}

var sqliteExtended = map[sqlite3.ErrNoExtended]ErrorCode{
	sqlite3.ErrConstraintUnique:     ErrorCodeDuplicateKey,
	sqlite3.ErrConstraintPrimaryKey: ErrorCodeDuplicateKey,
	sqlite3.ErrConstraintNotNull:    ErrorCodeValidation,
	sqlite3.ErrConstraintCheck:      ErrorCodeValidation,
	sqlite3.ErrConstraintForeignKey: ErrorCodeInvalidArgument,
}

var sqliteCodes = map[sqlite3.ErrNo]ErrorCode{
	sqlite3.ErrBusy:     ErrorCodeUnavailable,
	sqlite3.ErrLocked:   ErrorCodeUnavailable,
	sqlite3.ErrReadonly: ErrorCodeUnavailable,
	sqlite3.ErrCantOpen: ErrorCodeUnavailable,
	sqlite3.ErrFull:     ErrorCodeUnavailable,
	sqlite3.ErrTooBig:   ErrorCodeInvalidArgument,
	sqlite3.ErrMismatch: ErrorCodeInvalidArgument,
	sqlite3.ErrRange:    ErrorCodeInvalidArgument,
}

// DBErrorCode classifies a pgx or sqlite3 driver error
// ok is false when err came from neither driver
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		if c, ok := pgCodes[pgErr.Code]; ok {
			return c, true
		}
		return ErrorCodeDB, true
	}

	var liteErr sqlite3.Error
	if stderrs.As(err, &liteErr) {
		if c, ok := sqliteExtended[liteErr.ExtendedCode]; ok {
			return c, true
		}
		if c, ok := sqliteCodes[liteErr.Code]; ok {
			return c, true
		}
		return ErrorCodeDB, true
	}
	return ErrorCodeUnknown, false
}

// FromDB wraps a storage error with msg and a mapped code
// our own errors pass through, a cancelled or expired context is Unavailable
// and anything unrecognized is ErrorCodeDB
func FromDB(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ours := As(err); ours {
		return err
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	if c, ok := DBErrorCode(err); ok {
		return Wrap(err, c, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
