package ormtx

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	sq "github.com/n-r-w/squirrel"
)

// Helpers for read queries issued under a transaction with a row-locking
// hint. The lock mode is a per-query value passed by the caller; the
// Transaction itself does not track it.

// Builder creates a new instance of squirrel.StatementBuilderType for building queries
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Locked appends the locking clause for mode to a SELECT builder.
func Locked(b sq.SelectBuilder, mode LockMode) sq.SelectBuilder {
	return b.Suffix(mode.Clause())
}

// SelectLocked executes a locking SELECT and scans all rows into dst.
// Querier should be the connection bound to the transaction issuing the read.
func SelectLocked[T any](ctx context.Context, querier IQuerier, b sq.SelectBuilder, mode LockMode, dst *[]T) error {
	sql, args, err := Locked(b, mode).ToSql()
	if err != nil {
		return fmt.Errorf("SelectLocked to sql: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("SelectLocked query: %w", err)
	}

	return pgxscan.ScanAll(dst, rows)
}

// SelectOneLocked executes a locking SELECT that should return one row.
// dst must contain a variable, not a slice.
func SelectOneLocked[T any](ctx context.Context, querier IQuerier, b sq.SelectBuilder, mode LockMode, dst *T) error {
	sql, args, err := Locked(b, mode).ToSql()
	if err != nil {
		return fmt.Errorf("SelectOneLocked to sql: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("SelectOneLocked query: %w", err)
	}

	return pgxscan.ScanOne(dst, rows)
}
