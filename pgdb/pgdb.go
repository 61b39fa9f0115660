// Package pgdb provides the PostgreSQL backend for ormtx: a pgxpool-based
// connection provider and the query interface that turns transaction
// lifecycle operations into statements on the connection reserved for the
// transaction.
package pgdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx postgres driver
	"github.com/n-r-w/bootstrap"
	"github.com/ormkit/ormtx"
	"github.com/ormkit/ormtx/txmgr"

	"github.com/cenkalti/backoff/v5"
)

// PgDB service owning the connection pool. Implements the
// txmgr.IConnectionProvider and bootstrap.IService interfaces.
type PgDB struct {
	name          string
	restartPolicy []backoff.RetryOption
	dsn           string

	// afterSetupFunc is the dialect post-setup hook, run once per
	// transaction on its reserved connection after begin, isolation level
	// and autocommit have been applied.
	afterSetupFunc AfterSetupFunc

	config *pgxpool.Config
	pool   *pgxpool.Pool

	logger ormtx.ILogger
}

// AfterSetupFunc is the dialect post-setup hook signature.
type AfterSetupFunc func(ctx context.Context, conn *pgxpool.Conn, tx *ormtx.Transaction) error

var (
	_ bootstrap.IService        = (*PgDB)(nil)
	_ txmgr.IConnectionProvider = (*PgDB)(nil)
)

// New creates a new instance of PgDB.
func New(opt ...Option) *PgDB {
	p := &PgDB{}

	for _, o := range opt {
		o(p)
	}

	if p.name == "" {
		p.name = "pgdb"
	}

	return p
}

// Start starts the service: creates the pool and checks connectivity.
func (p *PgDB) Start(ctx context.Context) error {
	if p.logger != nil {
		p.logger.Debugf(ctx, "starting pgdb service %s", p.name)
	}

	var (
		pool *pgxpool.Pool
		err  error
	)
	if p.config != nil {
		pool, err = pgxpool.NewWithConfig(ctx, p.config)
	} else {
		pool, err = pgxpool.New(ctx, p.dsn)
	}
	if err != nil {
		return fmt.Errorf("create pgx pool for %s: %w", p.name, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("connect to database %s: %w", p.name, err)
	}

	p.pool = pool

	if p.logger != nil {
		p.logger.Debugf(ctx, "connected to database %s", p.name)
	}

	return nil
}

// Stop stops the service. Waits for reserved connections to be released.
func (p *PgDB) Stop(_ context.Context) error {
	if p.pool != nil {
		p.pool.Close()
	}

	return nil
}

// Info returns service information.
func (p *PgDB) Info() bootstrap.Info {
	return bootstrap.Info{
		Name:          p.name,
		RestartPolicy: p.restartPolicy,
	}
}

// Pool returns the underlying pool.
func (p *PgDB) Pool() *pgxpool.Pool {
	return p.pool
}

// AcquireConnectionManager takes a connection from the pool and binds it
// to the transaction id for the transaction's whole lifetime.
func (p *PgDB) AcquireConnectionManager(ctx context.Context, txID uuid.UUID) (ormtx.IConnectionManager, error) {
	con, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	return newConnManager(p, txID, con), nil
}
