// Package ormtx manages the lifecycle of a database transaction within a
// connection-pooled ORM layer: one exclusive connection per transaction id,
// a strict begin → isolation level → autocommit → post-setup protocol, and
// a release-exactly-once cleanup guarantee on commit and rollback.
package ormtx

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// TransactionState is the lifecycle state of a Transaction.
type TransactionState int32

// Lifecycle states. Transitions are driven only by the Transaction's own
// methods; there is no way back from a terminal state.
const (
	StateCreated    TransactionState = iota // after construction
	StatePreparing                          // during PrepareEnvironment
	StateActive                             // environment prepared
	StateCommitted                          // terminal
	StateRolledBack                         // terminal
	StateFailed                             // terminal, a step errored
)

// String returns the state name.
func (s TransactionState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePreparing:
		return "preparing"
	case StateActive:
		return "active"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled back"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("TransactionState(%d)", int32(s))
	}
}

// Terminal returns true if no further transition is possible.
func (s TransactionState) Terminal() bool {
	return s == StateCommitted || s == StateRolledBack || s == StateFailed
}

// Session is the orchestrator that owns transactions: it carries the
// registry of reserved connections and the query interface used to drive
// the lifecycle statements. Multiple independent sessions may coexist in
// one process, each with its own registry.
type Session struct {
	txm    ITransactionManager
	qi     IQueryInterface
	logger ILogger
}

// SessionOption option for NewSession.
type SessionOption func(*Session)

// WithLogger sets the logger.
func WithLogger(logger ILogger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a Session over a transaction registry and a query
// interface.
func NewSession(txm ITransactionManager, qi IQueryInterface, opt ...SessionOption) (*Session, error) {
	if txm == nil {
		return nil, &ConfigurationError{Reason: "transaction manager is required"}
	}
	if qi == nil {
		return nil, &ConfigurationError{Reason: "query interface is required"}
	}

	s := &Session{
		txm: txm,
		qi:  qi,
	}
	for _, o := range opt {
		o(s)
	}

	return s, nil
}

// TransactionManager returns the session's registry.
func (s *Session) TransactionManager() ITransactionManager {
	return s.txm
}

// NewTransaction creates a Transaction owned by this session. Options are
// merged onto the defaults (autocommit on, REPEATABLE READ). No I/O occurs
// until PrepareEnvironment is called.
func (s *Session) NewTransaction(opt ...TxOption) (*Transaction, error) {
	cfg := DefaultConfig()
	for _, o := range opt {
		o(&cfg)
	}

	if !cfg.IsolationLevel.Valid() {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("invalid isolation level %d", int(cfg.IsolationLevel)),
		}
	}
	if cfg.IsolationLevel == LevelDefault {
		cfg.IsolationLevel = RepeatableRead
	}

	return &Transaction{
		id:    uuid.New(),
		owner: s,
		cfg:   cfg,
		state: StateCreated,
	}, nil
}

// Transaction represents one logical database transaction. It is created
// by Session.NewTransaction and holds exactly one reserved connection from
// PrepareEnvironment until the first Commit or Rollback.
type Transaction struct {
	id    uuid.UUID
	owner *Session
	cfg   Config

	mu    sync.Mutex
	state TransactionState

	cleanupOnce sync.Once
	cleanupErr  error
}

// ID returns the process-unique transaction id used as the key for
// connection reservation.
func (t *Transaction) ID() uuid.UUID {
	return t.id
}

// Config returns the resolved transaction configuration.
func (t *Transaction) Config() Config {
	return t.cfg
}

// State returns the current lifecycle state.
func (t *Transaction) State() TransactionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Transaction) setState(s TransactionState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

// transition moves from exactly one expected state to next and reports
// whether the move happened.
func (t *Transaction) transition(from, to TransactionState) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != from {
		return false
	}
	t.state = to
	return true
}

// PrepareEnvironment reserves a connection for the transaction id and runs
// the setup protocol: begin, set isolation level, set autocommit, dialect
// post-setup hook. The steps run strictly in sequence; a failing step
// aborts the rest and leaves the transaction in StateFailed with the
// connection still reserved. Callers must Rollback after a failed
// preparation to release the connection.
func (t *Transaction) PrepareEnvironment(ctx context.Context) error {
	if !t.transition(StateCreated, StatePreparing) {
		return fmt.Errorf("%w: prepare in state %s", ErrInvalidTransactionState, t.State())
	}

	cm, err := t.owner.txm.ReserveConnectionManager(ctx, t.id)
	if err != nil {
		t.setState(StateFailed)
		return &ConnectionReservationError{Err: err}
	}

	if err = t.owner.qi.StartTransaction(ctx, t); err != nil {
		return t.failPrepare(ctx, &StatementError{Op: "begin", Err: err})
	}

	if err = t.owner.qi.SetIsolationLevel(ctx, t, t.cfg.IsolationLevel); err != nil {
		return t.failPrepare(ctx, &StatementError{Op: "set isolation level", Err: err})
	}

	if err = t.owner.qi.SetAutocommit(ctx, t, t.cfg.Autocommit); err != nil {
		return t.failPrepare(ctx, &StatementError{Op: "set autocommit", Err: err})
	}

	if err = cm.AfterTransactionSetup(ctx, t); err != nil {
		return t.failPrepare(ctx, &HookError{Err: err})
	}

	t.setState(StateActive)

	if l := t.owner.logger; l != nil {
		l.Debugf(ctx, "transaction %s prepared: isolation=%s autocommit=%t",
			t.id, t.cfg.IsolationLevel, t.cfg.Autocommit)
	}

	return nil
}

// failPrepare marks the transaction failed, keeping its connection
// reserved for the caller's explicit rollback.
func (t *Transaction) failPrepare(ctx context.Context, err error) error {
	t.setState(StateFailed)

	if l := t.owner.logger; l != nil {
		l.Errorf(ctx, "transaction %s preparation failed: %v", t.id, err)
	}

	return err
}

// Commit issues the commit statement and then runs cleanup, releasing the
// reserved connection. Cleanup runs even when the statement fails, and a
// cleanup failure never masks the statement error.
func (t *Transaction) Commit(ctx context.Context) error {
	if t.State() != StateActive {
		return fmt.Errorf("%w: commit in state %s", ErrInvalidTransactionState, t.State())
	}

	stmtErr := t.owner.qi.CommitTransaction(ctx, t)
	cleanupErr := t.cleanup(ctx)

	if stmtErr != nil {
		t.setState(StateFailed)
		if cleanupErr != nil && t.owner.logger != nil {
			t.owner.logger.Warningf(ctx, "transaction %s: cleanup after failed commit: %v", t.id, cleanupErr)
		}
		return &StatementError{Op: "commit", Err: stmtErr}
	}

	t.setState(StateCommitted)
	return cleanupErr
}

// Rollback issues the rollback statement and then runs cleanup, with the
// same guaranteed-release contract as Commit. Rollback is also the
// designated explicit-cleanup path after a failed PrepareEnvironment, so
// it is permitted from StateFailed.
func (t *Transaction) Rollback(ctx context.Context) error {
	prev := t.State()
	if prev != StateActive && prev != StateFailed {
		return fmt.Errorf("%w: rollback in state %s", ErrInvalidTransactionState, prev)
	}

	stmtErr := t.owner.qi.RollbackTransaction(ctx, t)
	cleanupErr := t.cleanup(ctx)

	if stmtErr != nil {
		t.setState(StateFailed)
		if cleanupErr != nil && t.owner.logger != nil {
			t.owner.logger.Warningf(ctx, "transaction %s: cleanup after failed rollback: %v", t.id, cleanupErr)
		}
		return &StatementError{Op: "rollback", Err: stmtErr}
	}

	if prev == StateActive {
		t.setState(StateRolledBack)
	}

	return cleanupErr
}

// cleanup releases the reserved connection back to the pool, at most once
// per transaction. A missing reservation is not an error here: nothing was
// acquired or it is already gone.
func (t *Transaction) cleanup(ctx context.Context) error {
	t.cleanupOnce.Do(func() {
		err := t.owner.txm.ReleaseConnectionManager(ctx, t.id)
		if err != nil && !IsNotFound(err) {
			t.cleanupErr = fmt.Errorf("release connection: %w", err)
		}
	})

	return t.cleanupErr
}

// WithTransaction creates a transaction, prepares its environment, executes
// the callback function, and handles commit/rollback automatically.
// If the callback returns an error, the transaction is rolled back.
// Otherwise, it is committed. A failed preparation is rolled back as well,
// so the reserved connection is never leaked by this helper.
func (s *Session) WithTransaction(ctx context.Context,
	f func(ctx context.Context, tx *Transaction) error, opt ...TxOption,
) error {
	tx, err := s.NewTransaction(opt...)
	if err != nil {
		return err
	}

	if err = tx.PrepareEnvironment(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	// If panic occurs, rollback the transaction.
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p) // Re-throw panic after rollback.
		}
	}()

	if err = f(ctx, tx); err != nil {
		rbErr := tx.Rollback(ctx)
		if rbErr != nil {
			return fmt.Errorf("rollback failed: %v: %w", rbErr, err) //nolint:errorlint // ok for 2 errors
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
