// Package txmgr implements the registry of connections reserved by
// in-flight transactions, keyed by transaction id. The registry is an
// explicit object owned by a session, not a process-wide singleton, so
// several independent sessions can coexist in one process.
package txmgr

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ormkit/ormtx"
	"github.com/samber/lo"
)

// Registry maps transaction id to its reserved connection manager.
// It is the sole arbiter of which transaction owns which connection:
// ownership is exclusive from Reserve until Release. Safe for concurrent
// use by multiple in-flight transactions.
type Registry struct {
	provider IConnectionProvider
	logger   ormtx.ILogger

	mu       sync.Mutex
	reserved map[uuid.UUID]ormtx.IConnectionManager
}

var _ ormtx.ITransactionManager = (*Registry)(nil)

// Option option for Registry.
type Option func(*Registry)

// WithLogger sets the logger.
func WithLogger(logger ormtx.ILogger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a Registry over a connection provider.
func New(provider IConnectionProvider, opt ...Option) *Registry {
	r := &Registry{
		provider: provider,
		reserved: make(map[uuid.UUID]ormtx.IConnectionManager),
	}

	for _, o := range opt {
		o(r)
	}

	return r
}

// ReserveConnectionManager acquires a connection manager from the provider
// and registers it under txID. At most one reservation may exist per id.
// The slot is claimed before the acquire so concurrent reservations for
// the same id cannot both reach the pool.
func (r *Registry) ReserveConnectionManager(ctx context.Context, txID uuid.UUID) (ormtx.IConnectionManager, error) {
	r.mu.Lock()
	if _, ok := r.reserved[txID]; ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ormtx.ErrAlreadyReserved, txID)
	}
	r.reserved[txID] = nil // claim the slot, acquire happens outside the lock
	r.mu.Unlock()

	cm, err := r.provider.AcquireConnectionManager(ctx, txID)
	if err != nil {
		r.mu.Lock()
		delete(r.reserved, txID)
		r.mu.Unlock()
		return nil, fmt.Errorf("acquire connection manager: %w", err)
	}

	r.mu.Lock()
	r.reserved[txID] = cm
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debugf(ctx, "reserved connection for transaction %s", txID)
	}

	return cm, nil
}

// GetConnectorManager returns the connection manager reserved for txID.
// Fails with ormtx.ErrNotFound if there is no reservation (unknown id or
// already released).
func (r *Registry) GetConnectorManager(txID uuid.UUID) (ormtx.IConnectionManager, error) {
	r.mu.Lock()
	cm, ok := r.reserved[txID]
	r.mu.Unlock()

	if !ok || cm == nil {
		return nil, fmt.Errorf("%w: %s", ormtx.ErrNotFound, txID)
	}

	return cm, nil
}

// ReleaseConnectionManager returns the connection to the pool and removes
// the registry entry. A second call for the same id reports
// ormtx.ErrNotFound and never releases another transaction's connection.
func (r *Registry) ReleaseConnectionManager(ctx context.Context, txID uuid.UUID) error {
	r.mu.Lock()
	cm, ok := r.reserved[txID]
	if ok {
		delete(r.reserved, txID)
	}
	r.mu.Unlock()

	if !ok || cm == nil {
		return fmt.Errorf("%w: %s", ormtx.ErrNotFound, txID)
	}

	if err := cm.Release(ctx); err != nil {
		return fmt.Errorf("release connection manager: %w", err)
	}

	if r.logger != nil {
		r.logger.Debugf(ctx, "released connection of transaction %s", txID)
	}

	return nil
}

// TransactionIDs returns ids of all transactions with a reserved connection.
func (r *Registry) TransactionIDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo.Keys(r.reserved)
}

// Count returns the number of reserved connections.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reserved)
}
