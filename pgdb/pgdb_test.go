package pgdb

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ormkit/ormtx"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIsolationLevelStatement(t *testing.T) {
	t.Parallel()

	require.Equal(t, "SET TRANSACTION ISOLATION LEVEL READ UNCOMMITTED",
		isolationLevelStatement(ormtx.ReadUncommitted))
	require.Equal(t, "SET TRANSACTION ISOLATION LEVEL READ COMMITTED",
		isolationLevelStatement(ormtx.ReadCommitted))
	require.Equal(t, "SET TRANSACTION ISOLATION LEVEL REPEATABLE READ",
		isolationLevelStatement(ormtx.RepeatableRead))
	require.Equal(t, "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE",
		isolationLevelStatement(ormtx.Serializable))
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	p := New()
	require.Equal(t, "pgdb", p.Info().Name)

	p = New(
		WithName("billing"),
		WithDSN("postgres://localhost:5432/billing"),
	)
	require.Equal(t, "billing", p.Info().Name)
	require.Equal(t, "postgres://localhost:5432/billing", p.dsn)
}

func newTestTx(t *testing.T, mc *gomock.Controller) *ormtx.Transaction {
	t.Helper()

	s, err := ormtx.NewSession(ormtx.NewMockITransactionManager(mc), ormtx.NewMockIQueryInterface(mc))
	require.NoError(t, err)

	tx, err := s.NewTransaction()
	require.NoError(t, err)

	return tx
}

func TestConnManager_AfterTransactionSetup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	tx := newTestTx(t, mc)

	t.Run("no hook configured", func(t *testing.T) {
		cm := newConnManager(New(), tx.ID(), nil)
		require.NoError(t, cm.AfterTransactionSetup(ctx, tx))
	})

	t.Run("hook receives the transaction", func(t *testing.T) {
		var gotID uuid.UUID
		hookErr := errors.New("hook error")

		p := New(WithAfterSetup(func(_ context.Context, _ *pgxpool.Conn, tx *ormtx.Transaction) error {
			gotID = tx.ID()
			return hookErr
		}))

		cm := newConnManager(p, tx.ID(), nil)
		require.ErrorIs(t, cm.AfterTransactionSetup(ctx, tx), hookErr)
		require.Equal(t, tx.ID(), gotID)
	})
}

func TestQueryInterface_ConnResolution(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	tx := newTestTx(t, mc)

	t.Run("no reservation for id", func(t *testing.T) {
		txm := ormtx.NewMockITransactionManager(mc)
		txm.EXPECT().GetConnectorManager(tx.ID()).Return(nil, ormtx.ErrNotFound)

		qi := NewQueryInterface(txm)
		require.True(t, ormtx.IsNotFound(qi.StartTransaction(ctx, tx)))
	})

	t.Run("foreign connection manager type", func(t *testing.T) {
		txm := ormtx.NewMockITransactionManager(mc)
		txm.EXPECT().GetConnectorManager(tx.ID()).Return(ormtx.NewMockIConnectionManager(mc), nil)

		qi := NewQueryInterface(txm)
		err := qi.CommitTransaction(ctx, tx)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected connection manager type")
	})
}

func TestQueryInterface_SetAutocommit(t *testing.T) {
	t.Parallel()

	mc := gomock.NewController(t)
	defer mc.Finish()

	tx := newTestTx(t, mc)

	// No statement exists on postgres, so no connection lookup happens.
	qi := NewQueryInterface(ormtx.NewMockITransactionManager(mc))
	require.NoError(t, qi.SetAutocommit(context.Background(), tx, true))
	require.NoError(t, qi.SetAutocommit(context.Background(), tx, false))
}

func TestQueryInterface_InvalidIsolationLevel(t *testing.T) {
	t.Parallel()

	mc := gomock.NewController(t)
	defer mc.Finish()

	tx := newTestTx(t, mc)

	qi := NewQueryInterface(ormtx.NewMockITransactionManager(mc))
	require.Error(t, qi.SetIsolationLevel(context.Background(), tx, ormtx.IsolationLevel(42)))
}
