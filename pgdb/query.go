package pgdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ormkit/ormtx"
)

// Lifecycle statements.
const (
	sqlBegin    = "BEGIN"
	sqlCommit   = "COMMIT"
	sqlRollback = "ROLLBACK"
)

// isolationLevelStatement returns the statement applying level to the
// transaction opened by BEGIN.
func isolationLevelStatement(level ormtx.IsolationLevel) string {
	return "SET TRANSACTION ISOLATION LEVEL " + level.String()
}

// QueryInterface issues transaction lifecycle statements on the connection
// reserved for the transaction id. Implements ormtx.IQueryInterface.
type QueryInterface struct {
	txm    ormtx.ITransactionManager
	logger ormtx.ILogger
}

var _ ormtx.IQueryInterface = (*QueryInterface)(nil)

// QueryOption option for QueryInterface.
type QueryOption func(*QueryInterface)

// WithQueryLogger sets the logger.
func WithQueryLogger(logger ormtx.ILogger) QueryOption {
	return func(q *QueryInterface) {
		q.logger = logger
	}
}

// NewQueryInterface creates a QueryInterface resolving connections through
// the given registry.
func NewQueryInterface(txm ormtx.ITransactionManager, opt ...QueryOption) *QueryInterface {
	q := &QueryInterface{txm: txm}

	for _, o := range opt {
		o(q)
	}

	return q
}

// StartTransaction issues BEGIN on the transaction's reserved connection.
func (q *QueryInterface) StartTransaction(ctx context.Context, tx *ormtx.Transaction) error {
	return q.exec(ctx, tx, sqlBegin)
}

// SetIsolationLevel applies the isolation level to the open transaction.
func (q *QueryInterface) SetIsolationLevel(ctx context.Context, tx *ormtx.Transaction, level ormtx.IsolationLevel) error {
	if !level.Valid() {
		return fmt.Errorf("invalid isolation level %d", int(level))
	}

	return q.exec(ctx, tx, isolationLevelStatement(level))
}

// SetAutocommit applies the autocommit mode. PostgreSQL removed
// server-side autocommit in 7.4, so no statement is issued; the setting is
// still threaded through the protocol for dialects that honor it.
func (q *QueryInterface) SetAutocommit(ctx context.Context, tx *ormtx.Transaction, autocommit bool) error {
	if q.logger != nil {
		q.logger.Debugf(ctx, "transaction %s: autocommit=%t (no-op on postgres)", tx.ID(), autocommit)
	}

	return nil
}

// CommitTransaction issues COMMIT on the transaction's reserved connection.
func (q *QueryInterface) CommitTransaction(ctx context.Context, tx *ormtx.Transaction) error {
	return q.exec(ctx, tx, sqlCommit)
}

// RollbackTransaction issues ROLLBACK on the transaction's reserved connection.
func (q *QueryInterface) RollbackTransaction(ctx context.Context, tx *ormtx.Transaction) error {
	return q.exec(ctx, tx, sqlRollback)
}

// conn resolves the connection reserved for the transaction.
func (q *QueryInterface) conn(tx *ormtx.Transaction) (*pgxpool.Conn, error) {
	cm, err := q.txm.GetConnectorManager(tx.ID())
	if err != nil {
		return nil, err
	}

	pcm, ok := cm.(*ConnManager)
	if !ok {
		return nil, fmt.Errorf("unexpected connection manager type %T", cm)
	}

	return pcm.Conn(), nil
}

func (q *QueryInterface) exec(ctx context.Context, tx *ormtx.Transaction, sql string) error {
	con, err := q.conn(tx)
	if err != nil {
		return err
	}

	if q.logger != nil {
		q.logger.Debugf(ctx, "transaction %s: %s", tx.ID(), sql)
	}

	if _, err = con.Exec(ctx, sql); err != nil {
		return fmt.Errorf("exec %q: %w", sql, err)
	}

	return nil
}
