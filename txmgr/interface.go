package txmgr

//go:generate mockgen -source interface.go -destination interface_mock.go -package txmgr

import (
	"context"

	"github.com/google/uuid"
	"github.com/ormkit/ormtx"
)

// IConnectionProvider acquires a connection manager from the underlying
// pool for a transaction id. Implemented in the pgdb package.
type IConnectionProvider interface {
	AcquireConnectionManager(ctx context.Context, txID uuid.UUID) (ormtx.IConnectionManager, error)
}
