package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/celebrityRecs/internal/model"
)

func newTestInventory(t *testing.T) *SQLiteInventory {
	t.Helper()
	inv, err := NewSQLiteInventory(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = inv.Close() })
	return inv
}

func TestInventoryStartsEmpty(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	count, err := inv.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	items, err := inv.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInsertFrontOrdering(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		_, err := inv.InsertFront(ctx, model.WardrobeItem{
			Name:       fmt.Sprintf("Item %d", i),
			Era:        model.Era1960s,
			Confidence: 80,
		})
		require.NoError(t, err)
	}

	count, err := inv.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)

	items, err := inv.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, n)

	// Most recent first.
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("Item %d", n-1-i), item.Name)
	}
}

func TestInsertFrontFillsIdentity(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	stored, err := inv.InsertFront(ctx, model.WardrobeItem{
		Name:       "Vintage Silk Blouse",
		Era:        model.Era1940s,
		Confidence: 94,
		Glyph:      "👚",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	items, err := inv.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, stored.ID, items[0].ID)
	assert.Equal(t, model.Era1940s, items[0].Era)
	assert.Equal(t, 94.0, items[0].Confidence)
}

func TestInsertFrontAllowsDuplicates(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	item := model.WardrobeItem{Name: "Denim Jacket", Era: model.Era1990s, Confidence: 71}
	_, err := inv.InsertFront(ctx, item)
	require.NoError(t, err)
	_, err = inv.InsertFront(ctx, item)
	require.NoError(t, err)

	count, err := inv.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
