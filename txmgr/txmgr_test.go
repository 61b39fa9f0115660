package txmgr

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ormkit/ormtx"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_ReserveGetRelease(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	provider := NewMockIConnectionProvider(mc)
	cm := ormtx.NewMockIConnectionManager(mc)

	txID := uuid.New()
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), txID).Return(cm, nil)
	cm.EXPECT().Release(gomock.Any()).Return(nil)

	reg := New(provider)

	got, err := reg.ReserveConnectionManager(ctx, txID)
	require.NoError(t, err)
	require.Same(t, cm, got)
	require.Equal(t, 1, reg.Count())
	require.Equal(t, []uuid.UUID{txID}, reg.TransactionIDs())

	got, err = reg.GetConnectorManager(txID)
	require.NoError(t, err)
	require.Same(t, cm, got)

	require.NoError(t, reg.ReleaseConnectionManager(ctx, txID))
	require.Equal(t, 0, reg.Count())

	_, err = reg.GetConnectorManager(txID)
	require.True(t, ormtx.IsNotFound(err))
}

func TestRegistry_GetUnknown(t *testing.T) {
	t.Parallel()

	mc := gomock.NewController(t)
	defer mc.Finish()

	reg := New(NewMockIConnectionProvider(mc))

	_, err := reg.GetConnectorManager(uuid.New())
	require.True(t, ormtx.IsNotFound(err))
}

func TestRegistry_DoubleReserve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	provider := NewMockIConnectionProvider(mc)
	cm := ormtx.NewMockIConnectionManager(mc)

	txID := uuid.New()
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), txID).Return(cm, nil).Times(1)

	reg := New(provider)

	_, err := reg.ReserveConnectionManager(ctx, txID)
	require.NoError(t, err)

	_, err = reg.ReserveConnectionManager(ctx, txID)
	require.ErrorIs(t, err, ormtx.ErrAlreadyReserved)
	require.Equal(t, 1, reg.Count())
}

// TestRegistry_DoubleRelease verifies the second release is a NotFound,
// never a release of some other transaction's connection.
func TestRegistry_DoubleRelease(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	provider := NewMockIConnectionProvider(mc)

	cm1 := ormtx.NewMockIConnectionManager(mc)
	cm2 := ormtx.NewMockIConnectionManager(mc)

	id1, id2 := uuid.New(), uuid.New()
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), id1).Return(cm1, nil)
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), id2).Return(cm2, nil)

	// cm1 released exactly once, cm2 never.
	cm1.EXPECT().Release(gomock.Any()).Return(nil).Times(1)

	reg := New(provider)

	_, err := reg.ReserveConnectionManager(ctx, id1)
	require.NoError(t, err)
	_, err = reg.ReserveConnectionManager(ctx, id2)
	require.NoError(t, err)

	require.NoError(t, reg.ReleaseConnectionManager(ctx, id1))
	require.True(t, ormtx.IsNotFound(reg.ReleaseConnectionManager(ctx, id1)))

	// The other transaction's reservation is untouched.
	got, err := reg.GetConnectorManager(id2)
	require.NoError(t, err)
	require.Same(t, cm2, got)
}

func TestRegistry_AcquireFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	provider := NewMockIConnectionProvider(mc)

	txID := uuid.New()
	poolErr := errors.New("pool exhausted")
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), txID).Return(nil, poolErr)

	reg := New(provider)

	_, err := reg.ReserveConnectionManager(ctx, txID)
	require.ErrorIs(t, err, poolErr)

	// The claimed slot is freed, so the id can be reserved again.
	cm := ormtx.NewMockIConnectionManager(mc)
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), txID).Return(cm, nil)

	_, err = reg.ReserveConnectionManager(ctx, txID)
	require.NoError(t, err)
}

func TestRegistry_ReleaseError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	provider := NewMockIConnectionProvider(mc)
	cm := ormtx.NewMockIConnectionManager(mc)

	txID := uuid.New()
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), txID).Return(cm, nil)

	relErr := errors.New("release failed")
	cm.EXPECT().Release(gomock.Any()).Return(relErr)

	reg := New(provider)

	_, err := reg.ReserveConnectionManager(ctx, txID)
	require.NoError(t, err)

	require.ErrorIs(t, reg.ReleaseConnectionManager(ctx, txID), relErr)
	// The entry is deregistered even when the underlying release fails.
	require.Equal(t, 0, reg.Count())
}

// TestRegistry_Concurrent exercises the registry from many goroutines:
// every id ends up with its own connection manager and every release
// happens exactly once.
func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mc := gomock.NewController(t)
	defer mc.Finish()

	const n = 32

	provider := NewMockIConnectionProvider(mc)
	provider.EXPECT().AcquireConnectionManager(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID) (ormtx.IConnectionManager, error) {
			cm := ormtx.NewMockIConnectionManager(mc)
			cm.EXPECT().Release(gomock.Any()).Return(nil).Times(1)
			return cm, nil
		}).Times(n)

	reg := New(provider)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			id := uuid.New()
			if _, err := reg.ReserveConnectionManager(ctx, id); err != nil {
				t.Error(err)
				return
			}
			if _, err := reg.GetConnectorManager(id); err != nil {
				t.Error(err)
				return
			}
			if err := reg.ReleaseConnectionManager(ctx, id); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 0, reg.Count())
}
