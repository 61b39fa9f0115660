package ormtx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocked(t *testing.T) {
	t.Parallel()

	t.Run("for update", func(t *testing.T) {
		sql, args, err := Locked(Builder().
			Select("id", "balance").
			From("accounts").
			Where("id = ?", 42), LockUpdate).ToSql()

		require.NoError(t, err)
		require.Equal(t, "SELECT id, balance FROM accounts WHERE id = $1 FOR UPDATE", sql)
		require.Equal(t, []any{42}, args)
	})

	t.Run("for share", func(t *testing.T) {
		sql, _, err := Locked(Builder().
			Select("id").
			From("accounts"), LockShare).ToSql()

		require.NoError(t, err)
		require.Equal(t, "SELECT id FROM accounts FOR SHARE", sql)
	})
}
