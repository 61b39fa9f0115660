package pgdb

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ormkit/ormtx"
)

// ConnManager owns one physical connection for the duration of a single
// transaction. The connection is never shared between transactions.
type ConnManager struct {
	db   *PgDB
	txID uuid.UUID
	con  *pgxpool.Conn

	releaseOnce sync.Once
}

var _ ormtx.IConnectionManager = (*ConnManager)(nil)

func newConnManager(db *PgDB, txID uuid.UUID, con *pgxpool.Conn) *ConnManager {
	return &ConnManager{
		db:   db,
		txID: txID,
		con:  con,
	}
}

// TxID returns the id of the transaction the connection is bound to.
func (c *ConnManager) TxID() uuid.UUID {
	return c.txID
}

// Conn returns the reserved connection.
func (c *ConnManager) Conn() *pgxpool.Conn {
	return c.con
}

// AfterTransactionSetup runs the service's dialect post-setup hook on the
// reserved connection. With no hook configured it is a no-op.
func (c *ConnManager) AfterTransactionSetup(ctx context.Context, tx *ormtx.Transaction) error {
	if c.db.afterSetupFunc == nil {
		return nil
	}

	return c.db.afterSetupFunc(ctx, c.con, tx)
}

// Release returns the connection to the pool. Safe to call more than once,
// only the first call releases.
func (c *ConnManager) Release(_ context.Context) error {
	c.releaseOnce.Do(func() {
		c.con.Release()
	})

	return nil
}
