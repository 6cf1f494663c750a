package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dab1n-Lee/TDD-Study-hh/internal/models"
)

func TestBalancesRepo(t *testing.T) {
	r := NewBalancesRepo()

	t.Run("get on a fresh key returns zero without persisting", func(t *testing.T) {
		b, err := r.Get(1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), b.UserID)
		assert.Equal(t, int64(0), b.Amount)
		assert.False(t, b.LastUpdatedAt.IsZero())
	})

	t.Run("put stores and get reads back", func(t *testing.T) {
		stored, err := r.Put(1, 700)
		require.NoError(t, err)
		assert.Equal(t, int64(700), stored.Amount)

		got, err := r.Get(1)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})
}

func TestTransactionsRepo(t *testing.T) {
	r := NewTransactionsRepo()

	t.Run("empty history for unknown key", func(t *testing.T) {
		hs, err := r.ListByUser(1)
		require.NoError(t, err)
		assert.Empty(t, hs)
	})

	t.Run("append keeps insertion order per key", func(t *testing.T) {
		require.NoError(t, r.Append(models.Transaction{UserID: 1, Amount: 1000, Type: models.TxnCharge}))
		require.NoError(t, r.Append(models.Transaction{UserID: 2, Amount: 50, Type: models.TxnCharge}))
		require.NoError(t, r.Append(models.Transaction{UserID: 1, Amount: 300, Type: models.TxnUse}))

		hs, err := r.ListByUser(1)
		require.NoError(t, err)
		require.Len(t, hs, 2)
		assert.Equal(t, models.TxnCharge, hs[0].Type)
		assert.Equal(t, models.TxnUse, hs[1].Type)
	})

	t.Run("list returns an independent snapshot", func(t *testing.T) {
		hs, err := r.ListByUser(1)
		require.NoError(t, err)
		hs[0].Amount = 9999

		again, err := r.ListByUser(1)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), again[0].Amount)
	})
}

func TestAuditLogsRepo(t *testing.T) {
	r := NewAuditLogsRepo()

	require.NoError(t, r.Create(models.AuditLog{EntityType: "point", Action: "charge"}))
	require.NoError(t, r.Create(models.AuditLog{EntityType: "point", Action: "use"}))

	logs := r.List()
	require.Len(t, logs, 2)
	assert.Equal(t, "charge", logs[0].Action)
	assert.Equal(t, "use", logs[1].Action)
	for _, l := range logs {
		assert.NotEmpty(t, l.ID)
		assert.False(t, l.CreatedAt.IsZero())
	}
}
