package ormtx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")

	require.True(t, IsConfigurationError(&ConfigurationError{Reason: "bad"}))
	require.True(t, IsStatementError(&StatementError{Op: "begin", Err: inner}))
	require.True(t, IsHookError(&HookError{Err: inner}))
	require.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrNotFound)))

	require.ErrorIs(t, &StatementError{Op: "commit", Err: inner}, inner)
	require.ErrorIs(t, &HookError{Err: inner}, inner)
	require.ErrorIs(t, &ConnectionReservationError{Err: inner}, inner)

	require.False(t, IsStatementError(inner))
	require.False(t, IsNotFound(inner))
}

func TestPgErrorClassification(t *testing.T) {
	t.Parallel()

	wrap := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	require.True(t, IsSerializationFailure(wrap(pgerrcode.SerializationFailure)))
	require.True(t, IsDeadlockDetected(wrap(pgerrcode.DeadlockDetected)))
	require.True(t, IsTooManyConnections(wrap(pgerrcode.TooManyConnections)))

	require.False(t, IsSerializationFailure(wrap(pgerrcode.UniqueViolation)))
	require.False(t, IsDeadlockDetected(errors.New("plain")))
}
