package ormtx

//go:generate mockgen -source interface.go -destination interface_mock.go -package ormtx

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IQueryInterface translates transaction lifecycle operations into
// dialect-specific statements executed against the connection reserved
// for the transaction id. Implemented in the pgdb package.
type IQueryInterface interface {
	// StartTransaction issues the dialect transaction-start statement.
	StartTransaction(ctx context.Context, tx *Transaction) error
	// SetIsolationLevel applies the isolation level to the open transaction.
	SetIsolationLevel(ctx context.Context, tx *Transaction, level IsolationLevel) error
	// SetAutocommit applies the autocommit mode to the backing session.
	SetAutocommit(ctx context.Context, tx *Transaction, autocommit bool) error
	// CommitTransaction issues the dialect commit statement.
	CommitTransaction(ctx context.Context, tx *Transaction) error
	// RollbackTransaction issues the dialect rollback statement.
	RollbackTransaction(ctx context.Context, tx *Transaction) error
}

// IConnectionManager abstracts one physical database connection reserved
// for a transaction, plus its dialect-specific hooks.
type IConnectionManager interface {
	// AfterTransactionSetup runs dialect follow-up once the begin,
	// isolation level and autocommit statements have been issued
	// (session variables and the like). Invoked once per transaction.
	AfterTransactionSetup(ctx context.Context, tx *Transaction) error
	// Release returns the connection to the pool.
	Release(ctx context.Context) error
}

// ITransactionManager is the registry of reserved connection managers,
// keyed by transaction id. Implemented in the txmgr package.
type ITransactionManager interface {
	// ReserveConnectionManager reserves a connection manager for the
	// transaction id. At most one reservation may exist per id.
	ReserveConnectionManager(ctx context.Context, txID uuid.UUID) (IConnectionManager, error)
	// GetConnectorManager returns the connection manager reserved for the
	// id, or an ErrNotFound error if there is no reservation.
	GetConnectorManager(txID uuid.UUID) (IConnectionManager, error)
	// ReleaseConnectionManager returns the connection to the pool and
	// removes the registry entry. A second call for the same id reports
	// ErrNotFound and never touches another transaction's connection.
	ReleaseConnectionManager(ctx context.Context, txID uuid.UUID) error
}

// IQuerier is a subset of pgxpool.Pool, pgx.Conn and pgx.Tx interfaces
// used by the locking query helpers.
type IQuerier interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error)
}
