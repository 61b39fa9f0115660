package ormtx

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by the transaction registry and state machine.
var (
	// ErrNotFound is reported when no connection manager is reserved for
	// a transaction id (unknown id or already released).
	ErrNotFound = errors.New("no reserved connection for transaction")

	// ErrAlreadyReserved is reported when a connection manager is already
	// reserved for a transaction id.
	ErrAlreadyReserved = errors.New("connection already reserved for transaction")

	// ErrInvalidTransactionState is reported when a lifecycle method is
	// called in a state that does not allow it.
	ErrInvalidTransactionState = errors.New("invalid transaction state")
)

// ConfigurationError reports invalid transaction options. It is raised at
// construction, never deferred to preparation time.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "transaction configuration: " + e.Reason
}

// ConnectionReservationError reports a failure to reserve a connection for
// a transaction (pool exhausted or registry has no mapping for the id).
type ConnectionReservationError struct {
	Err error
}

func (e *ConnectionReservationError) Error() string {
	return fmt.Sprintf("reserve connection: %v", e.Err)
}

func (e *ConnectionReservationError) Unwrap() error { return e.Err }

// StatementError reports a lifecycle statement (begin, set isolation level,
// set autocommit, commit, rollback) failing at the database.
type StatementError struct {
	Op  string
	Err error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("%s statement: %v", e.Op, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

// HookError reports a failure of the dialect post-setup hook.
type HookError struct {
	Err error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("after transaction setup hook: %v", e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }

// IsNotFound checks if the error means the transaction id has no
// reserved connection.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConfigurationError checks if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// IsStatementError checks if the error is a StatementError.
func IsStatementError(err error) bool {
	var e *StatementError
	return errors.As(err, &e)
}

// IsHookError checks if the error is a HookError.
func IsHookError(err error) bool {
	var e *HookError
	return errors.As(err, &e)
}

// Helpers for classifying Postgres errors surfaced through StatementError.
// The pgerrcode package contains the error codes; what it lacks is added here.
// https://www.postgresql.org/docs/16/errcodes-appendix.html

// IsSerializationFailure checks if the error is a serialization failure
// (typical under SERIALIZABLE when concurrent transactions conflict).
func IsSerializationFailure(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		return pgErr.Code == pgerrcode.SerializationFailure
	}
	return false
}

// IsDeadlockDetected checks if the error is a deadlock detection error.
func IsDeadlockDetected(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		return pgErr.Code == pgerrcode.DeadlockDetected
	}
	return false
}

// IsTooManyConnections checks if the error means the server ran out of
// connection slots.
func IsTooManyConnections(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		return pgErr.Code == pgerrcode.TooManyConnections
	}
	return false
}

func toPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
