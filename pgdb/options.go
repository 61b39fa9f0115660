package pgdb

import (
	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ormkit/ormtx"
)

// Option option for PgDB.
type Option func(*PgDB)

// WithName sets service name.
func WithName(name string) Option {
	return func(p *PgDB) {
		p.name = name
	}
}

// WithDSN sets DSN for database connection.
// If WithConfig is used, this option is ignored.
func WithDSN(dsn string) Option {
	return func(p *PgDB) {
		p.dsn = dsn
	}
}

// WithConfig sets connection pool configuration.
func WithConfig(cfg *pgxpool.Config) Option {
	return func(p *PgDB) {
		p.config = cfg
	}
}

// WithPool sets an already created connection pool.
func WithPool(pool *pgxpool.Pool) Option {
	return func(p *PgDB) {
		p.pool = pool
	}
}

// WithRestartPolicy sets service restart policy on error.
// Only works when using https://github.com/n-r-w/bootstrap
func WithRestartPolicy(policy ...backoff.RetryOption) Option {
	return func(p *PgDB) {
		p.restartPolicy = policy
	}
}

// WithAfterSetup sets the dialect post-setup hook, run once per transaction
// after the setup statements (e.g. to set session variables).
func WithAfterSetup(f AfterSetupFunc) Option {
	return func(p *PgDB) {
		p.afterSetupFunc = f
	}
}

// WithLogger sets the logger.
func WithLogger(logger ormtx.ILogger) Option {
	return func(p *PgDB) {
		p.logger = logger
	}
}
