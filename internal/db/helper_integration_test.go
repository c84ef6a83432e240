//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/require"
)

// withTx returns a repository bound to a transaction that is rolled back when
// the test ends, so every test sees the seeded data only.
func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	tx, err := testDB.BeginContext(ctx)
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("rollback transaction: %v", err)
		}
		cancel()
	})

	return tx, ctx, New(tx)
}
